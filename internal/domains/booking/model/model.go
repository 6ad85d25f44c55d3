package model

import (
	"time"

	"mykuliah/shared/clock"
	"mykuliah/shared/model"
)

const (
	EntityName = "booking"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Booking struct {
	ID        string
	RoomID    string
	RoomName  string
	UserID    string
	UserName  string
	Purpose   string
	Date      time.Time
	StartTime clock.TimeOfDay
	EndTime   clock.TimeOfDay
	Status    Status
	model.Metadata
}

// Blocking reports whether the booking holds its slot against new bookings.
func (b Booking) Blocking() bool {
	return b.Status == StatusApproved
}

// Filter narrows booking listings. Empty fields match everything.
type Filter struct {
	Date   string
	RoomID string
	UserID string
}
