package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	appcontext "carto/context"
)

type Sidebar struct {
	cityList     binding.List[string]
	bookmarkList binding.List[string]

	HandleGoTo             func(lat, long float64, zoom int)
	HandleZoomStep         func(delta int)
	HandleCitySelected     func(name string)
	HandleSaveBookmark     func(name string)
	HandleBookmarkSelected func(name string)
}

func InitSidebar(cityList, bookmarkList binding.List[string]) *Sidebar {
	return &Sidebar{
		cityList:     cityList,
		bookmarkList: bookmarkList,
	}
}

func (s *Sidebar) Render() *fyne.Container {
	latEntry := widget.NewEntry()
	latEntry.SetPlaceHolder("Latitude (ex: 48.8566)")
	longEntry := widget.NewEntry()
	longEntry.SetPlaceHolder("Longitude (ex: 2.3522)")
	zoomEntry := widget.NewEntry()
	zoomEntry.SetPlaceHolder("Zoom (0-28)")

	goButton := widget.NewButton("Aller", func() {
		lat, long, zoom, err := parseGoTo(latEntry.Text, longEntry.Text, zoomEntry.Text)
		if err != nil {
			dialog.ShowError(err, appcontext.GetAppContext().W)
			return
		}
		if s.HandleGoTo != nil {
			s.HandleGoTo(lat, long, zoom)
		}
	})

	zoomButtons := container.NewGridWithColumns(2,
		widget.NewButton("Zoom -", func() {
			if s.HandleZoomStep != nil {
				s.HandleZoomStep(-1)
			}
		}),
		widget.NewButton("Zoom +", func() {
			if s.HandleZoomStep != nil {
				s.HandleZoomStep(1)
			}
		}),
	)

	selectCity := widget.NewSelectEntry([]string{})
	selectCity.SetPlaceHolder("Ville")
	if s.cityList != nil {
		s.cityList.AddListener(binding.NewDataListener(func() {
			cities, _ := s.cityList.Get()
			selectCity.SetOptions(cities)
		}))
	}
	selectCity.OnSubmitted = func(name string) {
		if s.HandleCitySelected != nil && name != "" {
			s.HandleCitySelected(strings.TrimSpace(name))
		}
	}

	selectBookmark := widget.NewSelectEntry([]string{})
	selectBookmark.SetPlaceHolder("Lieu enregistré")
	if s.bookmarkList != nil {
		s.bookmarkList.AddListener(binding.NewDataListener(func() {
			bookmarks, _ := s.bookmarkList.Get()
			selectBookmark.SetOptions(bookmarks)
		}))
	}
	selectBookmark.OnSubmitted = func(name string) {
		if s.HandleBookmarkSelected != nil && name != "" {
			s.HandleBookmarkSelected(strings.TrimSpace(name))
		}
	}

	saveButton := widget.NewButton("Enregistrer la vue", func() {
		entry := widget.NewEntry()
		entry.SetPlaceHolder("Nom du lieu (ex: Maison)")
		dialog.ShowForm("Enregistrer la vue", "Enregistrer", "Annuler", []*widget.FormItem{
			widget.NewFormItem("Nom", entry),
		}, func(ok bool) {
			if ok && entry.Text != "" {
				if s.HandleSaveBookmark != nil {
					s.HandleSaveBookmark(strings.TrimSpace(entry.Text))
				}
			}
		}, appcontext.GetAppContext().W)
	})

	return container.NewVBox(
		widget.NewLabel("Aller à une position"),
		latEntry,
		longEntry,
		zoomEntry,
		goButton,
		zoomButtons,
		widget.NewLabel("Sélectionnez une ville"),
		selectCity,
		widget.NewLabel("Lieux enregistrés"),
		selectBookmark,
		saveButton,
	)
}

func parseGoTo(latText, longText, zoomText string) (lat, long float64, zoom int, err error) {
	lat, err = strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("latitude invalide: %s", latText)
	}
	long, err = strconv.ParseFloat(strings.TrimSpace(longText), 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("longitude invalide: %s", longText)
	}
	zoom, err = strconv.Atoi(strings.TrimSpace(zoomText))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("zoom invalide: %s", zoomText)
	}
	return lat, long, zoom, nil
}
