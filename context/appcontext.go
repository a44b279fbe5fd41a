package appcontext

import (
	"database/sql"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"gorm.io/gorm"
)

type appContext struct {
	W      fyne.Window
	DB     *gorm.DB
	Duck   *sql.DB
	Logger *slog.Logger
}

var instance *appContext
var once sync.Once

func SetAppContext(w fyne.Window, db *gorm.DB, duck *sql.DB, logger *slog.Logger) {
	once.Do(func() {
		instance = &appContext{
			W:      w,
			DB:     db,
			Duck:   duck,
			Logger: logger,
		}
	})
}

func GetAppContext() appContext {
	if instance == nil {
		panic("Error: instance is nil. Should call SetAppContext first")
	}
	return *instance
}
