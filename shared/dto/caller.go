package dto

import (
	"context"

	"tablebook/shared/constant"
)

// Caller is the identity the access gate attached to the request.
type Caller struct {
	UserID  string
	IsAdmin bool
}

func CallerFromContext(ctx context.Context) Caller {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Caller{
		UserID:  userID,
		IsAdmin: role == constant.RoleAdmin,
	}
}

func (c Caller) Authenticated() bool {
	return c.UserID != ""
}
