package http

import (
	"time"

	"polaris-api/internal/model"
	"polaris-api/internal/user"
)

type listReq struct {
	Department string `form:"department"`
	Limit      int    `form:"limit"`
}

func (r listReq) toInput() user.ListInput {
	return user.ListInput{
		Filter: user.Filter{
			Department: r.Department,
			Limit:      r.Limit,
		},
	}
}

type updateProfileReq struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Department *string `json:"department"`
	Company    *string `json:"company"`
}

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Department: r.Department,
		Company:    r.Company,
	}
}

type userResp struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Department string    `json:"department,omitempty"`
	Role       string    `json:"role"`
	Company    string    `json:"company,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Department: u.Department,
		Role:       u.Role,
		Company:    u.Company,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

type listResp struct {
	Items []userResp `json:"items"`
}

func newListResp(users []model.User) listResp {
	items := make([]userResp, len(users))
	for i, u := range users {
		items[i] = newUserResp(u)
	}
	return listResp{Items: items}
}
