package repository

import (
	"context"

	catalog "github.com/tapetashop/tapeta/internal/catalog/domain"
	"github.com/tapetashop/tapeta/internal/transaction/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindWallpaperByArticleBatch(ctx context.Context, db *gorm.DB, article, batch string) (*domain.ResolvedWallpaper, error) {
	var w domain.ResolvedWallpaper
	err := db.WithContext(ctx).Raw(
		`SELECT w.id, w.wallpaper_type_id, w.batch, w.quantity, w.price, w.cost_price,
		        wt.article, wt.description
		 FROM wallpapers w
		 JOIN wallpaper_types wt ON wt.id = w.wallpaper_type_id
		 WHERE wt.article = ? AND w.batch = ?`,
		article, batch,
	).Scan(&w).Error
	if err != nil {
		return nil, err
	}
	if w.ID == 0 {
		return nil, nil
	}
	return &w, nil
}

func (r *repo) FindProductByName(ctx context.Context, db *gorm.DB, name string) (*domain.ResolvedProduct, error) {
	var p domain.ResolvedProduct
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, quantity, price, cost_price
		 FROM additional_products WHERE name = ?`,
		name,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) AdjustWallpaperStock(ctx context.Context, db *gorm.DB, id, delta int64) (bool, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE wallpapers SET quantity = quantity + ? WHERE id = ? AND quantity + ? >= 0`,
		delta, id, delta,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repo) AdjustProductStock(ctx context.Context, db *gorm.DB, id, delta int64) (bool, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE additional_products SET quantity = quantity + ? WHERE id = ? AND quantity + ? >= 0`,
		delta, id, delta,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repo) CreateTransaction(ctx context.Context, db *gorm.DB, t *domain.Transaction) error {
	return db.WithContext(ctx).Create(t).Error
}

func (r *repo) CreateTransactionItem(ctx context.Context, db *gorm.DB, item *domain.TransactionItem) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *repo) SupplierExists(ctx context.Context, db *gorm.DB, supplierID int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM suppliers WHERE id = ?`, supplierID,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) FindTypeByArticle(ctx context.Context, db *gorm.DB, article string) (*catalog.WallpaperType, error) {
	var t catalog.WallpaperType
	err := db.WithContext(ctx).Raw(
		`SELECT id, article, description, supplier_id, base_material, embossing,
		        manufacturer, image_url, image_3d_url, type, price_tag_printed, created_at
		 FROM wallpaper_types WHERE article = ?`,
		article,
	).Scan(&t).Error
	if err != nil {
		return nil, err
	}
	if t.ID == 0 {
		return nil, nil
	}
	return &t, nil
}

func (r *repo) CreateType(ctx context.Context, db *gorm.DB, t *catalog.WallpaperType) error {
	return db.WithContext(ctx).Create(t).Error
}

func (r *repo) UpdateTypeAttrs(ctx context.Context, db *gorm.DB, t *catalog.WallpaperType) error {
	return db.WithContext(ctx).Exec(
		`UPDATE wallpaper_types
		 SET description = ?, supplier_id = ?, base_material = ?, embossing = ?,
		     manufacturer = ?, image_url = ?, image_3d_url = ?, type = ?
		 WHERE id = ?`,
		t.Description, t.SupplierID, t.BaseMaterial, t.Embossing,
		t.Manufacturer, t.ImageURL, t.Image3DURL, t.Type,
		t.ID,
	).Error
}

func (r *repo) FindWallpaperByTypeBatch(ctx context.Context, db *gorm.DB, typeID int64, batch string) (*catalog.Wallpaper, error) {
	var w catalog.Wallpaper
	err := db.WithContext(ctx).Raw(
		`SELECT id, wallpaper_type_id, batch, shelf, "row", quantity, price, cost_price, is_remaining, created_at
		 FROM wallpapers WHERE wallpaper_type_id = ? AND batch = ?`,
		typeID, batch,
	).Scan(&w).Error
	if err != nil {
		return nil, err
	}
	if w.ID == 0 {
		return nil, nil
	}
	return &w, nil
}

func (r *repo) CreateWallpaper(ctx context.Context, db *gorm.DB, w *catalog.Wallpaper) error {
	return db.WithContext(ctx).Create(w).Error
}

func (r *repo) RestockWallpaper(ctx context.Context, db *gorm.DB, id, addQuantity int64, shelf, row int, costPrice, price int64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE wallpapers
		 SET quantity = quantity + ?, shelf = ?, "row" = ?, cost_price = ?, price = ?
		 WHERE id = ?`,
		addQuantity, shelf, row, costPrice, price, id,
	).Error
}

func (r *repo) PropagateTypePrice(ctx context.Context, db *gorm.DB, typeID, price int64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE wallpapers SET price = ? WHERE wallpaper_type_id = ? AND is_remaining = ?`,
		price, typeID, false,
	).Error
}
