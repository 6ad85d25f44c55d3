package model

import "strings"

const (
	EntityName = "room"
)

// Category groups rooms for usage statistics.
type Category string

const (
	CategoryHall  Category = "Dewan"
	CategoryRoom  Category = "Bilik"
	CategoryOther Category = "Lain-lain"
)

// Categories lists every category in reporting order.
func Categories() []Category {
	return []Category{CategoryHall, CategoryRoom, CategoryOther}
}

type Room struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	Location   string   `json:"location"`
	Facilities []string `json:"facilities"`
	ImageURL   string   `json:"imageUrl"`
	Available  bool     `json:"isAvailable"`
	Category   Category `json:"category"`
}

// Filter narrows the catalog. Zero value matches every room.
type Filter struct {
	Search    string
	Available *bool
}

// Match reports whether room satisfies the filter. Search is a case-insensitive
// substring match on name or location.
func (f Filter) Match(room Room) bool {
	if f.Available != nil && room.Available != *f.Available {
		return false
	}

	if f.Search == "" {
		return true
	}

	needle := strings.ToLower(f.Search)

	return strings.Contains(strings.ToLower(room.Name), needle) ||
		strings.Contains(strings.ToLower(room.Location), needle)
}
