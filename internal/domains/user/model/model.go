package model

import (
	"mykuliah/shared/model"
)

const (
	EntityName = "user"
)

type User struct {
	ID       string
	Email    string
	Password string
	Name     string
	Role     string
	Active   bool
	model.Metadata
}
