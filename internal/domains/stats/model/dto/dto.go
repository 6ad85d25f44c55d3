package dto

type CategoryCount struct {
	Category string `json:"category"`
	Bookings int    `json:"bookings"`
}

type StatsResponse struct {
	Categories     []CategoryCount `json:"categories"`
	TotalRooms     int             `json:"total_rooms"`
	AvailableRooms int             `json:"available_rooms"`
	TotalBookings  int             `json:"total_bookings"`
}
