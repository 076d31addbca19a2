package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]AdditionalProduct, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*AdditionalProduct, error)
	Update(ctx context.Context, db *gorm.DB, id int64, name string, price int64) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
