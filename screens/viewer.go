package screens

import (
	"database/sql"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"gorm.io/gorm"

	"carto/common"
	appcontext "carto/context"
	"carto/mercator"
	"carto/screens/viewer"
	"carto/types"
)

type ViewerScreen struct {
	logger       *slog.Logger
	db           *gorm.DB
	duck         *sql.DB
	window       fyne.Window
	sidebar      *viewer.Sidebar
	mapArea      *viewer.MapArea
	cityList     binding.List[string]
	bookmarkList binding.List[string]
	cities       []types.City
	mapDimension common.Dimension
}

func Run(logger *slog.Logger) {
	a := app.New()
	w := a.NewWindow("Carto")

	db, err := types.InitDB("carto.db", false)
	if err != nil {
		logger.Error("Can't open database", "error", err)
	}
	duck, err := types.InitDuckDB()
	if err != nil {
		logger.Error("Can't open duckdb", "error", err)
	}

	appcontext.SetAppContext(w, db, duck, logger)

	screen := InitViewerScreen(logger, db, duck, w)
	w.SetContent(screen.Render())
	w.ShowAndRun()
}

func InitViewerScreen(logger *slog.Logger, db *gorm.DB, duck *sql.DB, w fyne.Window) *ViewerScreen {
	cityList := binding.NewStringList()
	bookmarkList := binding.NewStringList()

	sidebar := viewer.InitSidebar(cityList, bookmarkList)

	dimension := common.Dimension{
		Width:  600,
		Height: 600,
	}
	mapArea := viewer.InitMapArea(logger, dimension)

	s := &ViewerScreen{
		logger:       logger,
		db:           db,
		duck:         duck,
		window:       w,
		sidebar:      sidebar,
		mapArea:      mapArea,
		cityList:     cityList,
		bookmarkList: bookmarkList,
		mapDimension: dimension,
	}

	sidebar.HandleGoTo = func(lat, long float64, zoom int) {
		mapArea.JumpTo(mercator.Coordinate{Lat: lat, Long: long}, zoom, true)
	}

	sidebar.HandleZoomStep = func(delta int) {
		zoom := mapArea.ZoomLevel() + delta
		if zoom < 0 {
			zoom = 0
		}
		mapArea.JumpTo(mapArea.Region().Center, zoom, false)
	}

	sidebar.HandleCitySelected = func(name string) {
		go func() {
			city, err := types.GetCityByName(duck, name)
			if err != nil {
				logger.Warn("Unknown city", "name", name, "error", err)
				return
			}
			fyne.Do(func() {
				mapArea.JumpTo(city.Coordinate(), 11, true)
			})
		}()
	}

	sidebar.HandleSaveBookmark = func(name string) {
		region := mapArea.Region()
		err := types.SaveBookmark(db, types.BookmarkModel{
			Name: name,
			Lat:  region.Center.Lat,
			Long: region.Center.Long,
			Zoom: mapArea.ZoomLevel(),
		})
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		s.refreshBookmarks()
	}

	sidebar.HandleBookmarkSelected = func(name string) {
		bookmark, err := types.GetBookmarkByName(db, name)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		mapArea.JumpTo(mercator.Coordinate{Lat: bookmark.Lat, Long: bookmark.Long}, bookmark.Zoom, true)
	}

	return s
}

func (s *ViewerScreen) Render() *container.Split {
	split := container.NewHSplit(
		s.sidebar.Render(),
		s.mapArea.Render(),
	)

	s.loadCities()
	s.refreshBookmarks()

	return split
}

func (s *ViewerScreen) loadCities() {
	progress := dialog.NewCustomWithoutButtons(
		"Chargement",
		container.NewVBox(
			widget.NewLabel("Chargement des villes..."),
			widget.NewProgressBarInfinite(),
		),
		s.window,
	)

	progress.Show()

	go func() {
		cities, err := types.GetCities(s.duck)

		fyne.Do(func() {
			progress.Hide()
			if err != nil {
				s.logger.Warn("Can't load cities", "error", err)
				return
			}

			s.cities = cities
			names := make([]string, 0, len(cities))
			for _, city := range cities {
				names = append(names, city.Name)
			}
			s.cityList.Set(names)
			s.mapArea.ShowCities(cities)
		})
	}()
}

func (s *ViewerScreen) refreshBookmarks() {
	bookmarks, err := types.GetBookmarks(s.db)
	if err != nil {
		s.logger.Warn("Can't load bookmarks", "error", err)
		return
	}

	names := make([]string, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		names = append(names, bookmark.Name)
	}
	s.bookmarkList.Set(names)
	s.mapArea.ShowBookmarks(bookmarks)
}
