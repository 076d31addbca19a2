package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/tapetashop/tapeta/internal/additionalproduct/domain"
	"github.com/tapetashop/tapeta/internal/additionalproduct/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&domain.AdditionalProduct{}))

	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, db, node
}

func seedProduct(t *testing.T, db *gorm.DB, node *snowflake.Node, name string, quantity int64) domain.AdditionalProduct {
	t.Helper()
	p := domain.AdditionalProduct{
		ID:        node.Generate().Int64(),
		Name:      name,
		Quantity:  quantity,
		Price:     50,
		CostPrice: 30,
	}
	assert.NoError(t, db.Create(&p).Error)
	return p
}

func TestUpdateProductRenamesAndReprices(t *testing.T) {
	svc, db, node := newTestService(t)
	p := seedProduct(t, db, node, "glue", 3)

	updated, err := svc.Update(context.Background(), p.ID, "wallpaper glue", 65)
	assert.NoError(t, err)
	assert.Equal(t, "wallpaper glue", updated.Name)
	assert.Equal(t, int64(65), updated.Price)
	assert.Equal(t, int64(3), updated.Quantity)

	var stored domain.AdditionalProduct
	assert.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
	assert.Equal(t, "wallpaper glue", stored.Name)
	assert.Equal(t, int64(65), stored.Price)
}

func TestUpdateProductValidatesName(t *testing.T) {
	svc, db, node := newTestService(t)
	p := seedProduct(t, db, node, "glue", 3)

	_, err := svc.Update(context.Background(), p.ID, "   ", 65)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Update(context.Background(), 404, "roller", 65)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProductGuardsStock(t *testing.T) {
	svc, db, node := newTestService(t)
	p := seedProduct(t, db, node, "glue", 3)

	err := svc.Delete(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrStockRemains)

	var count int64
	assert.NoError(t, db.Model(&domain.AdditionalProduct{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteEmptyProduct(t *testing.T) {
	svc, db, node := newTestService(t)
	p := seedProduct(t, db, node, "glue", 0)

	assert.NoError(t, svc.Delete(context.Background(), p.ID))

	var count int64
	assert.NoError(t, db.Model(&domain.AdditionalProduct{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.Delete(context.Background(), p.ID), domain.ErrNotFound)
}
