package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"mykuliah/infras/otel"
	"mykuliah/internal/domains/booking/model"
	"mykuliah/internal/domains/booking/model/dto"
	"mykuliah/internal/domains/booking/repository"
	"mykuliah/internal/domains/booking/rules"
	roomRepo "mykuliah/internal/domains/room/repository"
	"mykuliah/shared/constant"
	gDto "mykuliah/shared/dto"
	"mykuliah/shared/failure"
	"mykuliah/shared/logger"

	"github.com/rs/zerolog/log"
)

var adminRoles = []string{constant.RoleAdmin, constant.RoleSuperAdmin}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, req dto.GetBookingsRequest) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams, req dto.GetBookingsRequest) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, req dto.DeleteBookingRequest) (dto.DeleteBookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	hours    rules.Hours
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, hours rules.Hours, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		hours:    hours,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// the booking's owner is the caller; internal API key calls carry no identity
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	userName, _ := ctx.Value(constant.ContextKeyUserName).(string)

	if userID == constant.Empty {
		return res, failure.Unauthorized("missing requester identity") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if !room.Available {
		return res, failure.BadRequestFromString(fmt.Sprintf("%s is not available for booking", room.Name)) // nolint:wrapcheck
	}

	booking, err := req.ToModel(room.Name, userID, userName)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.hours.Check(booking.StartTime, booking.EndTime); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking, rules.NoConflict(booking)); err != nil {
		if errors.Is(err, rules.ErrSlotTaken) {
			return res, failure.Conflict(err.Error()) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	audit := logger.Requester(ctx)
	audit.Info().
		Str("booking_id", booking.ID).
		Str("room_id", booking.RoomID).
		Str("slot", booking.StartTime.String()+"-"+booking.EndTime.String()).
		Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, req dto.GetBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, params, req.ToFilter())
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams, req dto.GetBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("missing requester identity") // nolint:wrapcheck
	}

	filter := req.ToFilter()
	filter.UserID = userID

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter model.Filter) (res dto.GetBookingsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// Delete removes a booking for its owner or for an admin. An unconfirmed request
// is a silent no-op reported with Deleted false, whoever sends it.
func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteBookingRequest) (res dto.DeleteBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.ID = req.ID

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	booking, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !req.Confirm {
		return res, nil
	}

	owner := userID != constant.Empty && booking.UserID == userID
	if !owner && !slices.Contains(adminRoles, role) {
		scope.SetAttribute("reason", "not_owner")

		return res, failure.AccessDeniedError // nolint:wrapcheck
	}

	deleted, err := s.repo.Delete(ctx, req.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	// lost a race with another delete
	if !deleted {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.Deleted = true
	res.DeletedBy = userID

	audit := logger.Requester(ctx)
	audit.Info().
		Str("booking_id", booking.ID).
		Str("owner_id", booking.UserID).
		Bool("as_admin", !owner).
		Msg("booking deleted")

	return res, nil
}
