package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/tapetashop/tapeta/internal/auth/domain"
	"github.com/tapetashop/tapeta/internal/auth/repository"
	"github.com/tapetashop/tapeta/internal/auth/token"
	"github.com/tapetashop/tapeta/internal/config"
	userdomain "github.com/tapetashop/tapeta/internal/user/domain"
	userrepository "github.com/tapetashop/tapeta/internal/user/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, db.AutoMigrate(
		&userdomain.User{},
		&domain.RefreshToken{},
	))

	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)

	tokens := token.NewManager(config.Config{
		AccessTokenSecret:  "access-secret",
		RefreshTokenSecret: "refresh-secret",
		AccessTokenTTL:     time.Hour,
		RefreshTokenTTL:    24 * time.Hour,
	})

	svc := New(Params{
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Tokens: tokens,
		Repo:   repository.Provide(),
		Users:  userrepository.Provide(),
	})
	return svc, db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, domain.RegisterRequest{
		PhoneNumber: "+375291112233",
		Password:    "hunter22",
		Name:        "Olga",
	})
	assert.NoError(t, err)
	assert.Equal(t, userdomain.RoleUser, u.Role)

	result, err := svc.Login(ctx, domain.LoginRequest{
		PhoneNumber: "+375291112233",
		Password:    "hunter22",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Empty(t, result.User.Password)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{
		PhoneNumber: "+375291112233",
		Password:    "hunter22",
		Name:        "Olga",
	})
	assert.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterRequest{
		PhoneNumber: "+375291112233",
		Password:    "different",
		Name:        "Other",
	})
	assert.ErrorIs(t, err, domain.ErrPhoneTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{
		PhoneNumber: "+375291112233",
		Password:    "hunter22",
		Name:        "Olga",
	})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{
		PhoneNumber: "+375291112233",
		Password:    "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{
		PhoneNumber: "+375290000000",
		Password:    "hunter22",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{
		PhoneNumber: "+375291112233",
		Password:    "hunter22",
		Name:        "Olga",
	})
	assert.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{
		PhoneNumber: "+375291112233",
		Password:    "hunter22",
	})
	assert.NoError(t, err)

	pair, err := svc.Refresh(ctx, result.RefreshToken)
	assert.NoError(t, err)
	assert.NotEqual(t, result.RefreshToken, pair.RefreshToken)

	// The rotated-out token is gone from the store.
	_, err = svc.Refresh(ctx, result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	var count int64
	assert.NoError(t, db.Model(&domain.RefreshToken{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogoutDropsToken(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{
		PhoneNumber: "+375291112233",
		Password:    "hunter22",
		Name:        "Olga",
	})
	assert.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{
		PhoneNumber: "+375291112233",
		Password:    "hunter22",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(ctx, result.RefreshToken))

	var count int64
	assert.NoError(t, db.Model(&domain.RefreshToken{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = svc.Refresh(ctx, result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
