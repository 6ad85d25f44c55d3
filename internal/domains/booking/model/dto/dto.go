package dto

import (
	"fmt"

	"mykuliah/internal/domains/booking/model"
	"mykuliah/shared"
	"mykuliah/shared/clock"
	gDto "mykuliah/shared/dto"
	gModel "mykuliah/shared/model"
	"mykuliah/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID    string `json:"room_id"    validate:"required"`
	UserName  string `json:"user_name"  validate:"omitempty,max=100"`
	Purpose   string `json:"purpose"    validate:"required,max=200"`
	Date      string `json:"date"       validate:"required,date"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time"   validate:"required,clock"`
}

// ToModel builds an approved booking owned by userID. An empty UserName falls
// back to the owner's account name.
func (c *CreateBookingRequest) ToModel(roomName, userID, userName string) (model.Booking, error) {
	date, err := timezone.ParseDate(c.Date)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid date: %w", err)
	}

	start, err := clock.Parse(c.StartTime)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid start time: %w", err)
	}

	end, err := clock.Parse(c.EndTime)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid end time: %w", err)
	}

	name := c.UserName
	if name == "" {
		name = userName
	}

	return model.Booking{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		RoomName:  roomName,
		UserID:    userID,
		UserName:  name,
		Purpose:   c.Purpose,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    model.StatusApproved,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			CreatedBy: userID,
		},
	}, nil
}

type GetBookingsRequest struct {
	Date   string `json:"date"    validate:"omitempty,date"`
	RoomID string `json:"room_id" validate:"omitempty,max=50"`
}

func (g *GetBookingsRequest) ToFilter() model.Filter {
	return model.Filter{
		Date:   g.Date,
		RoomID: g.RoomID,
	}
}

type DeleteBookingRequest struct {
	ID      string `json:"id"      validate:"required"`
	Confirm bool   `json:"confirm"`
}

type DeleteBookingResponse struct {
	ID        string `json:"id"`
	Deleted   bool   `json:"deleted"`
	DeletedBy string `json:"deleted_by,omitempty"`
}

type BookingResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	RoomName  string `json:"room_name"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Purpose   string `json:"purpose"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.Purpose = model.Purpose
	r.Date = timezone.FormatDate(model.Date)
	r.StartTime = model.StartTime.String()
	r.EndTime = model.EndTime.String()
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
