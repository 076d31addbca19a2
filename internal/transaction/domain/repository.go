package domain

import (
	"context"

	catalog "github.com/tapetashop/tapeta/internal/catalog/domain"
	"gorm.io/gorm"
)

// ResolvedWallpaper is a stock batch resolved by (article, batch),
// carrying the catalog attributes a receipt needs.
type ResolvedWallpaper struct {
	ID          int64
	TypeID      int64 `gorm:"column:wallpaper_type_id"`
	Article     string
	Batch       string
	Description string
	Quantity    int64
	Price       int64
	CostPrice   int64
}

// ResolvedProduct is an ancillary product resolved by name.
type ResolvedProduct struct {
	ID        int64
	Name      string
	Quantity  int64
	Price     int64
	CostPrice int64
}

// Repository issues reads and writes against the inventory and ledger
// tables. Every method takes an explicit handle so the caller decides
// the transaction boundary; resolvers observe uncommitted writes made
// earlier through the same handle.
type Repository interface {
	FindWallpaperByArticleBatch(ctx context.Context, db *gorm.DB, article, batch string) (*ResolvedWallpaper, error)
	FindProductByName(ctx context.Context, db *gorm.DB, name string) (*ResolvedProduct, error)

	// AdjustWallpaperStock and AdjustProductStock apply a signed delta
	// guarded against negative quantity; they report false when the
	// guard rejects the update.
	AdjustWallpaperStock(ctx context.Context, db *gorm.DB, id, delta int64) (bool, error)
	AdjustProductStock(ctx context.Context, db *gorm.DB, id, delta int64) (bool, error)

	CreateTransaction(ctx context.Context, db *gorm.DB, t *Transaction) error
	CreateTransactionItem(ctx context.Context, db *gorm.DB, item *TransactionItem) error

	SupplierExists(ctx context.Context, db *gorm.DB, supplierID int64) (bool, error)
	FindTypeByArticle(ctx context.Context, db *gorm.DB, article string) (*catalog.WallpaperType, error)
	CreateType(ctx context.Context, db *gorm.DB, t *catalog.WallpaperType) error
	UpdateTypeAttrs(ctx context.Context, db *gorm.DB, t *catalog.WallpaperType) error
	FindWallpaperByTypeBatch(ctx context.Context, db *gorm.DB, typeID int64, batch string) (*catalog.Wallpaper, error)
	CreateWallpaper(ctx context.Context, db *gorm.DB, w *catalog.Wallpaper) error
	RestockWallpaper(ctx context.Context, db *gorm.DB, id, addQuantity int64, shelf, row int, costPrice, price int64) error
	PropagateTypePrice(ctx context.Context, db *gorm.DB, typeID, price int64) error
}
