package dto

import (
	"strings"

	"tablebook/internal/domains/user/model"
	gModel "tablebook/shared/model"
	"tablebook/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (r *CreateUserRequest) ToModel(createdBy string) model.User {
	return model.User{
		ID:       uuid.NewString(),
		Username: r.Username,
		Email:    strings.ToLower(r.Email),
		IsAdmin:  r.IsAdmin,
		Metadata: gModel.NewMetadata(timezone.Now(), createdBy),
	}
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *UserResponse) FromModel(m model.User) {
	u.ID = m.ID
	u.Username = m.Username
	u.Email = m.Email
	u.Role = m.Role()
}
