package service

import (
	"context"
	"fmt"

	"github.com/tapetashop/tapeta/internal/catalog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

func (s *Service) ListTypes(ctx context.Context) ([]domain.SupplierGroup, error) {
	types, err := s.repo.ListTypes(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list wallpaper types: %w", err)
	}

	// Rows arrive ordered by supplier name, so one pass is enough.
	groups := make([]domain.SupplierGroup, 0)
	for _, t := range types {
		if len(groups) == 0 || groups[len(groups)-1].SupplierID != t.SupplierID {
			groups = append(groups, domain.SupplierGroup{
				SupplierID:   t.SupplierID,
				SupplierName: t.SupplierName,
			})
		}
		g := &groups[len(groups)-1]
		g.Products = append(g.Products, t)
	}
	return groups, nil
}

func (s *Service) ListBatchesByType(ctx context.Context, typeID int64) ([]domain.BatchWithReserved, error) {
	return s.repo.ListBatchesByType(ctx, s.db, typeID)
}

func (s *Service) GetWallpaper(ctx context.Context, wallpaperID int64) (*domain.WallpaperDetail, error) {
	detail, err := s.repo.FindDetail(ctx, s.db, wallpaperID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

func (s *Service) UpdateWallpaper(ctx context.Context, wallpaperID int64, req domain.UpdateWallpaperRequest) error {
	if !req.Type.Valid() {
		return domain.ErrInvalidRollWidth
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w, err := s.repo.FindWallpaper(ctx, tx, wallpaperID)
		if err != nil {
			return err
		}
		if w == nil {
			return domain.ErrNotFound
		}

		if err := s.repo.UpdateWallpaperLocation(ctx, tx, wallpaperID, req.Batch, req.Shelf, req.Row); err != nil {
			return fmt.Errorf("update location: %w", err)
		}

		if req.Price != nil && *req.Price != w.Price {
			if w.IsRemaining {
				// Remainders are priced individually and never follow the type.
				if err := s.repo.UpdateWallpaperPrice(ctx, tx, wallpaperID, *req.Price); err != nil {
					return fmt.Errorf("update price: %w", err)
				}
			} else {
				if err := s.repo.PropagateTypePrice(ctx, tx, w.WallpaperTypeID, *req.Price); err != nil {
					return fmt.Errorf("propagate price: %w", err)
				}
			}
		}

		t := &domain.WallpaperType{
			ID:           w.WallpaperTypeID,
			Article:      req.Article,
			Description:  req.Description,
			SupplierID:   req.SupplierID,
			BaseMaterial: req.BaseMaterial,
			Embossing:    req.Embossing,
			Manufacturer: req.Manufacturer,
			ImageURL:     req.ImageURL,
			Image3DURL:   req.Image3DURL,
			Type:         req.Type,
		}
		if err := s.repo.UpdateTypeAttrs(ctx, tx, t); err != nil {
			return fmt.Errorf("update type attrs: %w", err)
		}
		return nil
	})
}

func (s *Service) DeleteWallpaper(ctx context.Context, wallpaperID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w, err := s.repo.FindWallpaper(ctx, tx, wallpaperID)
		if err != nil {
			return err
		}
		if w == nil {
			return domain.ErrNotFound
		}

		reserved, err := s.repo.ReservedQuantity(ctx, tx, wallpaperID)
		if err != nil {
			return err
		}
		if w.Quantity > 0 || reserved > 0 {
			return domain.ErrStockRemains
		}

		if err := s.repo.DeleteWallpaper(ctx, tx, wallpaperID); err != nil {
			return err
		}

		remaining, err := s.repo.CountBatches(ctx, tx, w.WallpaperTypeID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			s.log.Info("deleting orphaned wallpaper type", zap.Int64("wallpaper_type_id", w.WallpaperTypeID))
			if err := s.repo.DeleteType(ctx, tx, w.WallpaperTypeID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) ToggleRemaining(ctx context.Context, wallpaperID int64) (bool, error) {
	var remaining bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w, err := s.repo.FindWallpaper(ctx, tx, wallpaperID)
		if err != nil {
			return err
		}
		if w == nil {
			return domain.ErrNotFound
		}
		remaining = !w.IsRemaining
		return s.repo.SetRemaining(ctx, tx, wallpaperID, remaining)
	})
	if err != nil {
		return false, err
	}
	return remaining, nil
}
