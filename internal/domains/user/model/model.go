package model

import (
	"tablebook/shared/constant"
	"tablebook/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldIsAdmin  = "is_admin"
)

type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
	IsAdmin  bool   `db:"is_admin"`
	model.Metadata
}

func (u User) Exists() bool {
	return u.ID != ""
}

func (u User) Role() string {
	if u.IsAdmin {
		return constant.RoleAdmin
	}

	return constant.RoleUser
}
