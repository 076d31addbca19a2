package repository

import (
	"context"

	"github.com/tapetashop/tapeta/internal/auth/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) SaveRefreshToken(ctx context.Context, db *gorm.DB, t *domain.RefreshToken) error {
	return db.WithContext(ctx).Create(t).Error
}

func (r *repo) DeleteRefreshToken(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM refresh_tokens WHERE token = ?`, token,
	).Error
}

func (r *repo) RefreshTokenExists(ctx context.Context, db *gorm.DB, token string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM refresh_tokens WHERE token = ?`, token,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
