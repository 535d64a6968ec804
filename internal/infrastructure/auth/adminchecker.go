package auth

import (
	"context"

	"studyhall/internal/domain/user"
)

// RoleAdminChecker answers admin checks from the user store.
type RoleAdminChecker struct {
	userRepo user.Repository
}

func NewRoleAdminChecker(userRepo user.Repository) *RoleAdminChecker {
	return &RoleAdminChecker{userRepo: userRepo}
}

func (c *RoleAdminChecker) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	u, err := c.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	return u.IsAdmin(), nil
}
