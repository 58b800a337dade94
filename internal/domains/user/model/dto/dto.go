package dto

import (
	"hms/internal/domains/user/model"
	"hms/shared"
	"hms/shared/constant"
	"hms/shared/timezone"
)

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	LastLogin string `json:"last_login,omitempty"`
	Active    bool   `json:"active"`
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.Name = mod.Name
	r.Role = mod.Role
	r.Active = mod.Active

	if mod.LastLogin != nil {
		r.LastLogin = timezone.Format(*mod.LastLogin, constant.DateFormat)
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
