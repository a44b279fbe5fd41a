package types

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type BookmarkModel struct {
	gorm.Model
	Name string `gorm:"index;unique"`
	Lat  float64
	Long float64
	Zoom int
}

func InitDB(dbPath string, debug bool) (*gorm.DB, error) {
	logMode := logger.Silent
	if debug {
		logMode = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	err = db.AutoMigrate(&BookmarkModel{})
	if err != nil {
		return nil, fmt.Errorf("Can't create models %w", err)
	}

	return db, nil
}

// SaveBookmark inserts the bookmark, or updates its position if a bookmark
// with the same name already exists.
func SaveBookmark(db *gorm.DB, bookmark BookmarkModel) error {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "long", "zoom"}),
	}).Create(&bookmark)

	if result.Error != nil {
		return fmt.Errorf("save bookmark %s: %w", bookmark.Name, result.Error)
	}

	return nil
}

func GetBookmarks(db *gorm.DB) ([]BookmarkModel, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	var bookmarks []BookmarkModel
	err := db.WithContext(ctx).Order("name").Find(&bookmarks).Error
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	return bookmarks, nil
}

func GetBookmarkByName(db *gorm.DB, name string) (*BookmarkModel, error) {
	var bookmark BookmarkModel
	result := db.Where("name = ?", name).First(&bookmark)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no bookmark named %s", name)
	} else if result.Error != nil {
		return nil, result.Error
	}

	return &bookmark, nil
}

func GetClosestBookmark(db *gorm.DB, long, lat float64) (*BookmarkModel, error) {
	var closest BookmarkModel
	err := db.Raw("SELECT * FROM bookmark_models ORDER BY (lat - ?)*(lat - ?) + (long - ?)*(long - ?) LIMIT 1", lat, lat, long, long).
		Scan(&closest).Error

	if err != nil {
		return nil, err
	}

	return &closest, nil
}
