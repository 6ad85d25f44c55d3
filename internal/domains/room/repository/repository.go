package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"slices"

	"mykuliah/infras/otel"
	"mykuliah/internal/domains/room/model"
	"mykuliah/shared/constant"
)

var ErrNotFound = errors.New("room not found")

type Room interface {
	Get(ctx context.Context, id string) (model.Room, error)
	GetAll(ctx context.Context, filter model.Filter) ([]model.Room, error)
}

// repositoryImpl serves a fixed catalog. Rooms are reference data and never change
// at runtime, so no locking is needed.
type repositoryImpl struct {
	rooms []model.Room
	index map[string]int
	otel  otel.Otel
}

func New(catalog []model.Room, otel otel.Otel) Room {
	index := make(map[string]int, len(catalog))
	for i, room := range catalog {
		index[room.ID] = i
	}

	return &repositoryImpl{
		rooms: catalog,
		index: index,
		otel:  otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Room, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room.id", id)

	i, ok := r.index[id]
	if !ok {
		return res, ErrNotFound
	}

	return clone(r.rooms[i]), nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, filter model.Filter) (res []model.Room, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAll")
	defer scope.End()

	res = make([]model.Room, 0, len(r.rooms))

	for _, room := range r.rooms {
		if filter.Match(room) {
			res = append(res, clone(room))
		}
	}

	scope.SetAttribute("room.count", len(res))

	return res, nil
}

func clone(room model.Room) model.Room {
	room.Facilities = slices.Clone(room.Facilities)

	return room
}
