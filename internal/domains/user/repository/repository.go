package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"

	"mykuliah/infras/otel"
	"mykuliah/internal/domains/user/model"
	"mykuliah/shared/constant"
)

type User interface {
	// Get returns the zero User when id is unknown.
	Get(ctx context.Context, id string) (model.User, error)
	// GetByEmail matches case-insensitively and returns the zero User when nothing matches.
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

type repositoryImpl struct {
	users   []model.User
	byID    map[string]int
	byEmail map[string]int
	otel    otel.Otel
}

func New(directory []model.User, otel otel.Otel) User {
	r := &repositoryImpl{
		users:   directory,
		byID:    make(map[string]int, len(directory)),
		byEmail: make(map[string]int, len(directory)),
		otel:    otel,
	}

	for i, user := range directory {
		r.byID[user.ID] = i
		r.byEmail[strings.ToLower(user.Email)] = i
	}

	return r
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.User, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	if i, ok := r.byID[id]; ok {
		res = r.users[i]
	}

	return res, nil
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (res model.User, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetByEmail")
	defer scope.End()

	if i, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]; ok {
		res = r.users[i]
	}

	return res, nil
}
