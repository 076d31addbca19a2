package domain

import (
	"context"

	"gorm.io/gorm"
)

// TypeWithSupplier is a catalog entry joined with its supplier's name.
type TypeWithSupplier struct {
	WallpaperType
	SupplierName string `json:"supplier_name"`
}

// BatchWithReserved is a stock batch joined with the quantity currently
// held by pending or processed reservations.
type BatchWithReserved struct {
	Wallpaper
	TotalReservedQuantity int64 `json:"total_reserved_quantity"`
}

// WallpaperDetail is a stock batch joined with its catalog type.
type WallpaperDetail struct {
	ID           int64     `json:"id"`
	Batch        string    `json:"batch"`
	Shelf        int       `json:"shelf"`
	Row          int       `json:"row"`
	Price        int64     `json:"price"`
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

type Repository interface {
	ListTypes(ctx context.Context, db *gorm.DB) ([]TypeWithSupplier, error)
	ListBatchesByType(ctx context.Context, db *gorm.DB, typeID int64) ([]BatchWithReserved, error)
	FindDetail(ctx context.Context, db *gorm.DB, wallpaperID int64) (*WallpaperDetail, error)
	FindWallpaper(ctx context.Context, db *gorm.DB, wallpaperID int64) (*Wallpaper, error)
	ReservedQuantity(ctx context.Context, db *gorm.DB, wallpaperID int64) (int64, error)

	UpdateWallpaperLocation(ctx context.Context, db *gorm.DB, wallpaperID int64, batch string, shelf, row int) error
	UpdateWallpaperPrice(ctx context.Context, db *gorm.DB, wallpaperID, price int64) error
	PropagateTypePrice(ctx context.Context, db *gorm.DB, typeID, price int64) error
	UpdateTypeAttrs(ctx context.Context, db *gorm.DB, t *WallpaperType) error
	SetRemaining(ctx context.Context, db *gorm.DB, wallpaperID int64, remaining bool) error

	DeleteWallpaper(ctx context.Context, db *gorm.DB, wallpaperID int64) error
	CountBatches(ctx context.Context, db *gorm.DB, typeID int64) (int64, error)
	DeleteType(ctx context.Context, db *gorm.DB, typeID int64) error
}
