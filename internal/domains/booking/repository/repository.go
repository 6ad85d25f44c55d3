package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"mykuliah/infras/otel"
	"mykuliah/internal/domains/booking/model"
	"mykuliah/shared/constant"
	gDto "mykuliah/shared/dto"
	"mykuliah/shared/timezone"
)

// Guard inspects the current bookings under the write lock and vetoes an insert by
// returning an error.
type Guard func(existing []model.Booking) error

type Booking interface {
	Insert(ctx context.Context, booking model.Booking, guard Guard) error
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter model.Filter) ([]model.Booking, error)
	Count(ctx context.Context, filter model.Filter) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// repositoryImpl keeps bookings newest first for the lifetime of the process.
type repositoryImpl struct {
	mu       sync.RWMutex
	bookings []model.Booking
	otel     otel.Otel
}

func New(otel otel.Otel, seed Seed) (Booking, error) {
	repo := &repositoryImpl{
		otel: otel,
	}

	if seed != nil {
		if err := seed(context.Background(), repo); err != nil {
			return nil, fmt.Errorf("failed to seed bookings: %w", err)
		}
	}

	return repo, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking, guard Guard) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"booking.id":      booking.ID,
		"booking.room_id": booking.RoomID,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.bookings, func(b model.Booking) bool { return b.ID == booking.ID }) {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}

	if guard != nil {
		if err = guard(r.bookings); err != nil {
			return err
		}
	}

	r.bookings = slices.Insert(r.bookings, 0, booking)

	return nil
}

// Get returns the zero Booking when id is unknown.
func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}

	return res, nil
}

// GetAll pages over the matching bookings. SortDir ASC returns oldest first.
func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter model.Filter) (res []model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAll")
	defer scope.End()

	r.mu.RLock()
	matched := r.filter(filter)
	r.mu.RUnlock()

	if params.SortDir == gDto.SortDirAsc {
		slices.Reverse(matched)
	}

	start, end := params.Window(len(matched))
	res = matched[start:end]

	scope.SetAttribute("booking.count", len(res))

	return res, nil
}

func (r *repositoryImpl) Count(ctx context.Context, filter model.Filter) (res int, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Count")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.filter(filter)), nil
}

// Delete reports whether a booking was removed.
func (r *repositoryImpl) Delete(ctx context.Context, id string) (deleted bool, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Delete")
	defer scope.End()

	scope.SetAttribute("booking.id", id)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.bookings, func(b model.Booking) bool { return b.ID == id })
	if i < 0 {
		return false, nil
	}

	r.bookings = slices.Delete(r.bookings, i, i+1)

	return true, nil
}

// filter copies the matching bookings. Callers must hold the lock.
func (r *repositoryImpl) filter(filter model.Filter) []model.Booking {
	res := make([]model.Booking, 0, len(r.bookings))

	for _, b := range r.bookings {
		if match(b, filter) {
			res = append(res, b)
		}
	}

	return res
}

func match(b model.Booking, filter model.Filter) bool {
	if filter.Date != "" && timezone.FormatDate(b.Date) != filter.Date {
		return false
	}

	if filter.RoomID != "" && filter.RoomID != constant.RequestParamAllRooms && b.RoomID != filter.RoomID {
		return false
	}

	if filter.UserID != "" && b.UserID != filter.UserID {
		return false
	}

	return true
}
