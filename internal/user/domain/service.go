package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]User, error)
	SetRole(ctx context.Context, userID int64, role Role) error
}

var (
	ErrNotFound    = errors.New("user_not_found")
	ErrInvalidRole = errors.New("invalid_role")
)
