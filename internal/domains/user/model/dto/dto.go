package dto

import (
	"hotel/internal/domains/user/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

var SortableColumns = map[string]string{
	"created_at": "users.created_at",
	"username":   "users.username",
	"last_login": "users.last_login",
}

const DefaultSortColumn = "users.created_at"

// UpdateUserRequest lets an admin change a staff member's role or lock the
// account. Active is a pointer so that false can be sent.
type UpdateUserRequest struct {
	Role   string `db:"role"   json:"role"   validate:"omitempty,oneof=admin staff"`
	Active *bool  `db:"active" json:"active"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	LastLogin *int64 `json:"last_login"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(model model.User) {
	u.ID = model.ID
	u.Username = model.Username
	u.Role = model.Role
	u.Active = model.Active
	u.LastLogin = model.LastLogin
	u.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		g.Users[i].FromModel(mod)
	}
}
