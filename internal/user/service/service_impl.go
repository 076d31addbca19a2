package service

import (
	"context"

	"github.com/tapetashop/tapeta/internal/user/domain"
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
		log:  p.Log.Named("user.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) SetRole(ctx context.Context, userID int64, role domain.Role) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := s.repo.FindByID(ctx, tx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		if err := s.repo.UpdateRole(ctx, tx, userID, role); err != nil {
			return err
		}
		s.log.Info("user role updated",
			zap.Int64("user_id", userID),
			zap.String("role", string(role)),
		)
		return nil
	})
}
