package repository

import (
	"context"

	"github.com/tapetashop/tapeta/internal/additionalproduct/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.AdditionalProduct, error) {
	var items []domain.AdditionalProduct
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, quantity, price, cost_price, created_at
		 FROM additional_products
		 ORDER BY name`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.AdditionalProduct, error) {
	var p domain.AdditionalProduct
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, quantity, price, cost_price, created_at
		 FROM additional_products WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, id int64, name string, price int64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE additional_products SET name = ?, price = ? WHERE id = ?`,
		name, price, id,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM additional_products WHERE id = ?`, id,
	).Error
}
