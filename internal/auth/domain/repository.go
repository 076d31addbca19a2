package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	SaveRefreshToken(ctx context.Context, db *gorm.DB, t *RefreshToken) error
	DeleteRefreshToken(ctx context.Context, db *gorm.DB, token string) error
	RefreshTokenExists(ctx context.Context, db *gorm.DB, token string) (bool, error)
}
