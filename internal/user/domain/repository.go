package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]User, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*User, error)
	FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*User, error)
	Create(ctx context.Context, db *gorm.DB, u *User) error
	UpdateRole(ctx context.Context, db *gorm.DB, id int64, role Role) error
}
