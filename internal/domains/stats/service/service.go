package service

import (
	"context"
	"fmt"

	"mykuliah/infras/otel"
	bookingModel "mykuliah/internal/domains/booking/model"
	bookingRepo "mykuliah/internal/domains/booking/repository"
	roomModel "mykuliah/internal/domains/room/model"
	roomRepo "mykuliah/internal/domains/room/repository"
	"mykuliah/internal/domains/stats/model/dto"
	"mykuliah/shared/constant"
	gDto "mykuliah/shared/dto"

	"github.com/rs/zerolog/log"
)

type Stats interface {
	Get(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, otel otel.Otel) Stats {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		otel:        otel,
	}
}

// Get counts bookings per room category. Every category is reported, in the order
// of roomModel.Categories, even when it has no bookings.
func (s *serviceImpl) Get(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.roomRepo.GetAll(ctx, roomModel.Filter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingModel.Filter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	categoryOf := make(map[string]roomModel.Category, len(rooms))
	for _, room := range rooms {
		categoryOf[room.ID] = room.Category

		if room.Available {
			res.AvailableRooms++
		}
	}

	counts := make(map[roomModel.Category]int)
	for _, booking := range bookings {
		category, ok := categoryOf[booking.RoomID]
		if !ok {
			category = roomModel.CategoryOther
		}

		counts[category]++
	}

	for _, category := range roomModel.Categories() {
		res.Categories = append(res.Categories, dto.CategoryCount{
			Category: string(category),
			Bookings: counts[category],
		})
	}

	res.TotalRooms = len(rooms)
	res.TotalBookings = len(bookings)

	return res, nil
}
