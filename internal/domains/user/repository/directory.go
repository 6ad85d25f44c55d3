package repository

import (
	"time"

	"mykuliah/internal/domains/user/model"
	"mykuliah/shared/constant"
	gModel "mykuliah/shared/model"
)

// bcrypt hash of "password"
const defaultPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// DefaultDirectory is the seeded set of accounts. Seed bookings reference U1 and U2.
func DefaultDirectory() []model.User {
	users := []model.User{
		{ID: "U1", Email: "zakaria@mykuliah.edu.my", Name: "Prof. Zakaria", Role: constant.RoleLecturer},
		{ID: "U2", Email: "sarah@mykuliah.edu.my", Name: "Dr. Sarah", Role: constant.RoleLecturer},
		{ID: "U3", Email: "aisyah@student.mykuliah.edu.my", Name: "Aisyah", Role: constant.RoleStudent},
		{ID: "U9", Email: "admin@mykuliah.edu.my", Name: "Pentadbir Sistem", Role: constant.RoleAdmin},
	}

	for i := range users {
		users[i].Password = defaultPasswordHash
		users[i].Active = true
		users[i].Metadata = gModel.Metadata{
			CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			CreatedBy: constant.ContextSystem,
		}
	}

	return users
}
