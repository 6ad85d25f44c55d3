package repository

import "mykuliah/internal/domains/room/model"

const unsplash = "https://images.unsplash.com/"

func imageURL(photo string) string {
	return unsplash + photo + "?auto=format&fit=crop&q=80&w=800"
}

// DefaultCatalog is the faculty's bookable space.
func DefaultCatalog() []model.Room {
	return []model.Room{
		{
			ID:         "DK2",
			Name:       "Dewan Kuliah 2 (DK2)",
			Capacity:   200,
			Location:   "Tingkat 1",
			Facilities: []string{"Sistem Audio", "Projektor Laser", "Pendingin Udara"},
			ImageURL:   imageURL("photo-1519389950473-47ba0277781c"),
			Available:  true,
			Category:   model.CategoryHall,
		},
		{
			ID:         "A201",
			Name:       "Bilik Kuliah A201",
			Capacity:   40,
			Location:   "Tingkat 2",
			Facilities: []string{"Projektor", "Papan Putih", "Pendingin Udara"},
			ImageURL:   imageURL("photo-1517245386807-bb43f82c33c4"),
			Available:  true,
			Category:   model.CategoryRoom,
		},
		{
			ID:         "A202",
			Name:       "Bilik Kuliah A202",
			Capacity:   40,
			Location:   "Tingkat 2",
			Facilities: []string{"Projektor", "Papan Putih", "Pendingin Udara"},
			ImageURL:   imageURL("photo-1497366216548-37526070297c"),
			Available:  true,
			Category:   model.CategoryRoom,
		},
		{
			ID:         "A301",
			Name:       "Bilik Kuliah A301",
			Capacity:   40,
			Location:   "Tingkat 3",
			Facilities: []string{"Projektor", "Wi-Fi", "Pendingin Udara"},
			ImageURL:   imageURL("photo-1524178232363-1fb2b075b655"),
			Available:  true,
			Category:   model.CategoryRoom,
		},
		{
			ID:         "A302",
			Name:       "Bilik Kuliah A302",
			Capacity:   40,
			Location:   "Tingkat 3",
			Facilities: []string{"Projektor", "Wi-Fi", "Pendingin Udara"},
			ImageURL:   imageURL("photo-1431540015161-0bf868a2d407"),
			Available:  false,
			Category:   model.CategoryRoom,
		},
		{
			ID:         "A303",
			Name:       "Bilik Kuliah A303",
			Capacity:   40,
			Location:   "Tingkat 3",
			Facilities: []string{"Projektor", "Wi-Fi", "Pendingin Udara"},
			ImageURL:   imageURL("photo-1517502884422-41eaead166d4"),
			Available:  true,
			Category:   model.CategoryRoom,
		},
		{
			ID:         "A304",
			Name:       "Bilik Kuliah A304",
			Capacity:   40,
			Location:   "Tingkat 3",
			Facilities: []string{"Projektor", "Wi-Fi", "Pendingin Udara"},
			ImageURL:   imageURL("photo-1577412647305-991150c7d163"),
			Available:  true,
			Category:   model.CategoryRoom,
		},
		{
			ID:         "C203",
			Name:       "Bilik Kuliah C203",
			Capacity:   40,
			Location:   "Tingkat 2",
			Facilities: []string{"Projektor", "Smart Board", "Pendingin Udara"},
			ImageURL:   imageURL("photo-1547489432-cf93fa6c71ee"),
			Available:  true,
			Category:   model.CategoryRoom,
		},
		{
			ID:         "BPJKE",
			Name:       "Bilik Perbincangan JKE",
			Capacity:   10,
			Location:   "Tingkat Bawah (Depan Bilik KJKE)",
			Facilities: []string{"Papan Tulis Kaca", "Wi-Fi", "Meja Bulat"},
			ImageURL:   imageURL("photo-1505373633562-e285b603e75a"),
			Available:  true,
			Category:   model.CategoryRoom,
		},
		{
			ID:         "BMJKE",
			Name:       "Bilik Mesyuarat JKE",
			Capacity:   50,
			Location:   "Tingkat 1 Blok B",
			Facilities: []string{"Sistem Persidangan Video", "Projektor", "Sistem Audio"},
			ImageURL:   imageURL("photo-1562774053-701939374585"),
			Available:  true,
			Category:   model.CategoryRoom,
		},
	}
}
