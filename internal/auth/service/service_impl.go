package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/tapetashop/tapeta/internal/auth/domain"
	"github.com/tapetashop/tapeta/internal/auth/token"
	user "github.com/tapetashop/tapeta/internal/user/domain"
	"github.com/tapetashop/tapeta/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Tokens *token.Manager
	Repo   domain.Repository
	Users  user.Repository
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	tokens *token.Manager
	repo   domain.Repository
	users  user.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("auth.service"),
		genID:  p.GenID,
		tokens: p.Tokens,
		repo:   p.Repo,
		users:  p.Users,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*user.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		ID:          s.genID.Generate().Int64(),
		PhoneNumber: req.PhoneNumber,
		Password:    string(hashed),
		Name:        req.Name,
		Role:        user.RoleUser,
	}
	if err := s.users.Create(ctx, s.db, u); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrPhoneTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", zap.Int64("user_id", u.ID))
	return u, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	u, err := s.users.FindByPhone(ctx, s.db, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, s.db, u.ID, u.Name, string(u.Role))
	if err != nil {
		return nil, err
	}

	s.log.Info("user logged in", zap.Int64("user_id", u.ID))
	u.Password = ""
	return &domain.LoginResult{TokenPair: *pair, User: *u}, nil
}

// Refresh rotates the session: the presented token must still exist in
// the store, and is replaced by a fresh one in the same unit of work.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	var pair *domain.TokenPair
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.repo.RefreshTokenExists(ctx, tx, refreshToken)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrInvalidToken
		}
		if err := s.repo.DeleteRefreshToken(ctx, tx, refreshToken); err != nil {
			return err
		}
		pair, err = s.issuePair(ctx, tx, claims.UserID, claims.Name, claims.Role)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	return s.repo.DeleteRefreshToken(ctx, s.db, refreshToken)
}

func (s *Service) issuePair(ctx context.Context, tx *gorm.DB, userID int64, name, role string) (*domain.TokenPair, error) {
	access, err := s.tokens.IssueAccess(userID, name, role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(userID, name, role)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	err = s.repo.SaveRefreshToken(ctx, tx, &domain.RefreshToken{
		ID:     s.genID.Generate().Int64(),
		Token:  refresh,
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
