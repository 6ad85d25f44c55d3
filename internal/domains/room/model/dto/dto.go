package dto

import (
	"mykuliah/internal/domains/room/model"
)

type GetRoomsRequest struct {
	Search    string `json:"search"`
	Available *bool  `json:"available"`
}

func (g *GetRoomsRequest) ToFilter() model.Filter {
	return model.Filter{
		Search:    g.Search,
		Available: g.Available,
	}
}

type RoomResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	Location   string   `json:"location"`
	Facilities []string `json:"facilities"`
	ImageURL   string   `json:"image_url"`
	Available  bool     `json:"available"`
	Category   string   `json:"category"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Location = model.Location
	r.Facilities = model.Facilities
	r.ImageURL = model.ImageURL
	r.Available = model.Available
	r.Category = string(model.Category)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
