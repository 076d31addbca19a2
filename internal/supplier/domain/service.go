package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id int64) (*Supplier, error)
	GetIDByName(ctx context.Context, name string) (int64, error)
}

var (
	ErrNotFound    = errors.New("supplier_not_found")
	ErrInvalidName = errors.New("invalid_supplier_name")
)
