package domain

import (
	"context"
	"errors"
)

type Service interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
	Return(ctx context.Context, req ReturnRequest) error
	Defect(ctx context.Context, req DefectRequest) error
	Supply(ctx context.Context, req SupplyRequest) error
}

// PurchaseResult carries the committed header id and, when the caller
// asked for one, the rendered receipt document.
type PurchaseResult struct {
	TransactionID int64
	Receipt       []byte
}

// ReceiptItem is one line of a rendered receipt.
type ReceiptItem struct {
	Description string
	Quantity    int64
	Price       float64
	IsWallpaper bool
}

// ReceiptData is everything the formatter needs to render a purchase
// receipt. The engine hands it over strictly after commit.
type ReceiptData struct {
	TransactionID int64
	Items         []ReceiptItem
	Discount      int64
	Total         float64
}

// ReceiptGenerator renders a receipt document from finalized lines.
type ReceiptGenerator interface {
	Generate(data ReceiptData) ([]byte, error)
}

var (
	ErrEmptyItems        = errors.New("empty_item_list")
	ErrUnknownItemKind   = errors.New("unknown_item_kind")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrWallpaperNotFound = errors.New("wallpaper_not_found")
	ErrProductNotFound   = errors.New("additional_product_not_found")
	ErrSupplierNotFound  = errors.New("supplier_not_found")
	ErrInsufficientStock = errors.New("insufficient_stock")
)
