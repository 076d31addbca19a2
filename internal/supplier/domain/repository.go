package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Supplier, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Supplier, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Supplier, error)
}
