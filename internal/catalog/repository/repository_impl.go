package repository

import (
	"context"

	"github.com/tapetashop/tapeta/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListTypes(ctx context.Context, db *gorm.DB) ([]domain.TypeWithSupplier, error) {
	var items []domain.TypeWithSupplier
	err := db.WithContext(ctx).Raw(
		`SELECT wt.id, wt.article, wt.description, wt.supplier_id, wt.base_material,
		        wt.embossing, wt.manufacturer, wt.image_url, wt.image_3d_url, wt.type,
		        wt.price_tag_printed, wt.created_at,
		        s.name AS supplier_name
		 FROM wallpaper_types wt
		 JOIN suppliers s ON s.id = wt.supplier_id
		 ORDER BY s.name, wt.article`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListBatchesByType(ctx context.Context, db *gorm.DB, typeID int64) ([]domain.BatchWithReserved, error) {
	var items []domain.BatchWithReserved
	err := db.WithContext(ctx).Raw(
		`SELECT w.id, w.wallpaper_type_id, w.batch, w.shelf, w."row", w.quantity,
		        w.price, w.cost_price, w.is_remaining, w.created_at,
		        COALESCE(SUM(CASE WHEN r.status IN ('pending', 'processed') THEN ri.quantity ELSE 0 END), 0) AS total_reserved_quantity
		 FROM wallpapers w
		 LEFT JOIN reservation_items ri ON ri.item_id = w.id
		 LEFT JOIN reservations r ON r.id = ri.reservation_id
		 WHERE w.wallpaper_type_id = ?
		 GROUP BY w.id
		 HAVING w.quantity > 0 OR COALESCE(SUM(CASE WHEN r.status IN ('pending', 'processed') THEN ri.quantity ELSE 0 END), 0) > 0
		 ORDER BY w.is_remaining, w.quantity DESC`,
		typeID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindDetail(ctx context.Context, db *gorm.DB, wallpaperID int64) (*domain.WallpaperDetail, error) {
	var d domain.WallpaperDetail
	err := db.WithContext(ctx).Raw(
		`SELECT w.id, w.batch, w.shelf, w."row", w.price,
		        wt.article, wt.description, wt.supplier_id, wt.base_material,
		        wt.embossing, wt.manufacturer, wt.image_url, wt.image_3d_url, wt.type
		 FROM wallpapers w
		 JOIN wallpaper_types wt ON wt.id = w.wallpaper_type_id
		 WHERE w.id = ?`,
		wallpaperID,
	).Scan(&d).Error
	if err != nil {
		return nil, err
	}
	if d.ID == 0 {
		return nil, nil
	}
	return &d, nil
}

func (r *repo) FindWallpaper(ctx context.Context, db *gorm.DB, wallpaperID int64) (*domain.Wallpaper, error) {
	var w domain.Wallpaper
	err := db.WithContext(ctx).Raw(
		`SELECT id, wallpaper_type_id, batch, shelf, "row", quantity, price, cost_price, is_remaining, created_at
		 FROM wallpapers WHERE id = ?`,
		wallpaperID,
	).Scan(&w).Error
	if err != nil {
		return nil, err
	}
	if w.ID == 0 {
		return nil, nil
	}
	return &w, nil
}

func (r *repo) ReservedQuantity(ctx context.Context, db *gorm.DB, wallpaperID int64) (int64, error) {
	var reserved int64
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(CASE WHEN r.status IN ('pending', 'processed') THEN ri.quantity ELSE 0 END), 0)
		 FROM reservation_items ri
		 JOIN reservations r ON r.id = ri.reservation_id
		 WHERE ri.item_id = ?`,
		wallpaperID,
	).Scan(&reserved).Error
	if err != nil {
		return 0, err
	}
	return reserved, nil
}

func (r *repo) UpdateWallpaperLocation(ctx context.Context, db *gorm.DB, wallpaperID int64, batch string, shelf, row int) error {
	return db.WithContext(ctx).Exec(
		`UPDATE wallpapers SET batch = ?, shelf = ?, "row" = ? WHERE id = ?`,
		batch, shelf, row, wallpaperID,
	).Error
}

func (r *repo) UpdateWallpaperPrice(ctx context.Context, db *gorm.DB, wallpaperID, price int64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE wallpapers SET price = ? WHERE id = ?`,
		price, wallpaperID,
	).Error
}

func (r *repo) PropagateTypePrice(ctx context.Context, db *gorm.DB, typeID, price int64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE wallpapers SET price = ? WHERE wallpaper_type_id = ? AND is_remaining = ?`,
		price, typeID, false,
	).Error
}

func (r *repo) UpdateTypeAttrs(ctx context.Context, db *gorm.DB, t *domain.WallpaperType) error {
	return db.WithContext(ctx).Exec(
		`UPDATE wallpaper_types
		 SET article = ?, description = ?, supplier_id = ?, base_material = ?,
		     embossing = ?, manufacturer = ?, image_url = ?, image_3d_url = ?, type = ?
		 WHERE id = ?`,
		t.Article, t.Description, t.SupplierID, t.BaseMaterial,
		t.Embossing, t.Manufacturer, t.ImageURL, t.Image3DURL, t.Type,
		t.ID,
	).Error
}

func (r *repo) SetRemaining(ctx context.Context, db *gorm.DB, wallpaperID int64, remaining bool) error {
	return db.WithContext(ctx).Exec(
		`UPDATE wallpapers SET is_remaining = ? WHERE id = ?`,
		remaining, wallpaperID,
	).Error
}

func (r *repo) DeleteWallpaper(ctx context.Context, db *gorm.DB, wallpaperID int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM wallpapers WHERE id = ?`, wallpaperID).Error
}

func (r *repo) CountBatches(ctx context.Context, db *gorm.DB, typeID int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM wallpapers WHERE wallpaper_type_id = ?`, typeID,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repo) DeleteType(ctx context.Context, db *gorm.DB, typeID int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM wallpaper_types WHERE id = ?`, typeID).Error
}
