package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]AdditionalProduct, error)
	Get(ctx context.Context, id int64) (*AdditionalProduct, error)
	Update(ctx context.Context, id int64, name string, price int64) (*AdditionalProduct, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrNotFound     = errors.New("additional_product_not_found")
	ErrInvalidName  = errors.New("invalid_product_name")
	ErrStockRemains = errors.New("additional_product_stock_remains")
)
