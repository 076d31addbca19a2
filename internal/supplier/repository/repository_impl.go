package repository

import (
	"context"

	"github.com/tapetashop/tapeta/internal/supplier/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Supplier, error) {
	var items []domain.Supplier
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, description FROM suppliers ORDER BY name`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Supplier, error) {
	var s domain.Supplier
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, description FROM suppliers WHERE id = ?`, id,
	).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Supplier, error) {
	var s domain.Supplier
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, description FROM suppliers WHERE name = ?`, name,
	).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}
