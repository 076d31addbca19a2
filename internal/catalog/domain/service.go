package domain

import (
	"context"
	"errors"
)

type Service interface {
	ListTypes(ctx context.Context) ([]SupplierGroup, error)
	ListBatchesByType(ctx context.Context, typeID int64) ([]BatchWithReserved, error)
	GetWallpaper(ctx context.Context, wallpaperID int64) (*WallpaperDetail, error)
	UpdateWallpaper(ctx context.Context, wallpaperID int64, req UpdateWallpaperRequest) error
	DeleteWallpaper(ctx context.Context, wallpaperID int64) error
	ToggleRemaining(ctx context.Context, wallpaperID int64) (bool, error)
}

// SupplierGroup groups catalog entries under their supplier for listings.
type SupplierGroup struct {
	SupplierID   int64              `json:"supplier_id"`
	SupplierName string             `json:"supplier_name"`
	Products     []TypeWithSupplier `json:"products"`
}

type UpdateWallpaperRequest struct {
	Batch        string    `json:"batch"`
	Shelf        int       `json:"shelf"`
	Row          int       `json:"row"`
	Price        *int64    `json:"price"`
	Article      string    `json:"article"`
	Description  string    `json:"description"`
	SupplierID   int64     `json:"supplier_id"`
	BaseMaterial string    `json:"base_material"`
	Embossing    string    `json:"embossing"`
	Manufacturer string    `json:"manufacturer"`
	ImageURL     string    `json:"image_url"`
	Image3DURL   string    `json:"image_3d_url"`
	Type         RollWidth `json:"type"`
}

var (
	ErrNotFound         = errors.New("wallpaper_not_found")
	ErrInvalidRollWidth = errors.New("invalid_roll_width")
	ErrStockRemains     = errors.New("wallpaper_stock_remains")
)
