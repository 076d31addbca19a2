package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	productdomain "github.com/tapetashop/tapeta/internal/additionalproduct/domain"
	catalogdomain "github.com/tapetashop/tapeta/internal/catalog/domain"
	supplierdomain "github.com/tapetashop/tapeta/internal/supplier/domain"
	"github.com/tapetashop/tapeta/internal/transaction/domain"
	"github.com/tapetashop/tapeta/internal/transaction/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, db.AutoMigrate(
		&supplierdomain.Supplier{},
		&catalogdomain.WallpaperType{},
		&catalogdomain.Wallpaper{},
		&productdomain.AdditionalProduct{},
		&domain.Transaction{},
		&domain.TransactionItem{},
	))

	node, err := snowflake.NewNode(1)
	assert.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc.(*Service), db, node
}

func seedSupplier(t *testing.T, db *gorm.DB, node *snowflake.Node) supplierdomain.Supplier {
	t.Helper()
	s := supplierdomain.Supplier{
		ID:    node.Generate().Int64(),
		Name:  "Grandeco",
		Email: "orders@grandeco.test",
	}
	assert.NoError(t, db.Create(&s).Error)
	return s
}

func seedWallpaper(t *testing.T, db *gorm.DB, node *snowflake.Node, supplierID int64, article, batch string, quantity, price, costPrice int64) catalogdomain.Wallpaper {
	t.Helper()
	wt := catalogdomain.WallpaperType{
		ID:           node.Generate().Int64(),
		Article:      article,
		Description:  "Vinyl on non-woven",
		SupplierID:   supplierID,
		BaseMaterial: "non-woven",
		Embossing:    "textured",
		Manufacturer: "Grandeco",
		Type:         catalogdomain.RollWidthWide,
	}
	assert.NoError(t, db.Create(&wt).Error)

	w := catalogdomain.Wallpaper{
		ID:              node.Generate().Int64(),
		WallpaperTypeID: wt.ID,
		Batch:           batch,
		Shelf:           1,
		Row:             2,
		Quantity:        quantity,
		Price:           price,
		CostPrice:       costPrice,
	}
	assert.NoError(t, db.Create(&w).Error)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, node *snowflake.Node, name string, quantity, price, costPrice int64) productdomain.AdditionalProduct {
	t.Helper()
	p := productdomain.AdditionalProduct{
		ID:        node.Generate().Int64(),
		Name:      name,
		Quantity:  quantity,
		Price:     price,
		CostPrice: costPrice,
	}
	assert.NoError(t, db.Create(&p).Error)
	return p
}

func stockOf(t *testing.T, db *gorm.DB, wallpaperID int64) int64 {
	t.Helper()
	var w catalogdomain.Wallpaper
	assert.NoError(t, db.First(&w, "id = ?", wallpaperID).Error)
	return w.Quantity
}

func ledgerRows(t *testing.T, db *gorm.DB) ([]domain.Transaction, []domain.TransactionItem) {
	t.Helper()
	var headers []domain.Transaction
	var items []domain.TransactionItem
	assert.NoError(t, db.Find(&headers).Error)
	assert.NoError(t, db.Find(&items).Error)
	return headers, items
}

func TestPurchaseDecrementsStockAndWritesLedger(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 10, 100, 60)

	result, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
		Items: []domain.LineItem{
			{Kind: domain.KindWallpaper, Article: "A1", Batch: "B1", Quantity: 5},
		},
		Discount: 20,
	})
	assert.NoError(t, err)
	assert.NotZero(t, result.TransactionID)

	assert.Equal(t, int64(5), stockOf(t, db, w.ID))

	headers, items := ledgerRows(t, db)
	assert.Len(t, headers, 1)
	assert.Equal(t, domain.TypePurchase, headers[0].Type)
	assert.Equal(t, int64(20), headers[0].Discount)

	assert.Len(t, items, 1)
	assert.Equal(t, domain.TableWallpapers, items[0].ItemTable)
	assert.Equal(t, w.ID, items[0].ItemID)
	assert.Equal(t, float64(100), items[0].Price)
	assert.Equal(t, int64(60), items[0].CostPrice)
	assert.Equal(t, int64(5), items[0].Quantity)
}

func TestPurchaseInsufficientStockLeavesNoTrace(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 10, 100, 60)

	_, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
		Items: []domain.LineItem{
			{Kind: domain.KindWallpaper, Article: "A1", Batch: "B1", Quantity: 11},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), stockOf(t, db, w.ID))
	headers, items := ledgerRows(t, db)
	assert.Empty(t, headers)
	assert.Empty(t, items)
}

func TestPurchaseValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Purchase(context.Background(), domain.PurchaseRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyItems)

	_, err = svc.Purchase(context.Background(), domain.PurchaseRequest{
		Items: []domain.LineItem{{Kind: "voucher", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownItemKind)

	_, err = svc.Purchase(context.Background(), domain.PurchaseRequest{
		Items: []domain.LineItem{{Kind: domain.KindWallpaper, Article: "A1", Batch: "B1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestPurchaseRollsBackWhenLastLineFails(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 10, 100, 60)

	_, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
		Items: []domain.LineItem{
			{Kind: domain.KindWallpaper, Article: "A1", Batch: "B1", Quantity: 5},
			{Kind: domain.KindWallpaper, Article: "A1", Batch: "missing", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrWallpaperNotFound)

	assert.Equal(t, int64(10), stockOf(t, db, w.ID))
	headers, items := ledgerRows(t, db)
	assert.Empty(t, headers)
	assert.Empty(t, items)
}

func TestReturnWithoutPriceDifference(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 3, 100, 60)

	err := svc.Return(context.Background(), domain.ReturnRequest{
		Items: []domain.LineItem{
			{Kind: domain.KindWallpaper, Article: "A1", Batch: "B1", Quantity: 2},
		},
		TotalPrice: 200,
	})
	assert.NoError(t, err)

	assert.Equal(t, int64(5), stockOf(t, db, w.ID))
	headers, items := ledgerRows(t, db)
	assert.Len(t, headers, 1)
	assert.Equal(t, domain.TypeReturn, headers[0].Type)
	assert.Len(t, items, 1)
	assert.Equal(t, float64(100), items[0].Price)
	assert.Equal(t, int64(2), items[0].Quantity)
}

func TestReturnReconcilesDeclaredTotal(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 0, 100, 60)

	err := svc.Return(context.Background(), domain.ReturnRequest{
		Items: []domain.LineItem{
			{Kind: domain.KindWallpaper, Article: "A1", Batch: "B1", Quantity: 2},
		},
		TotalPrice: 180,
	})
	assert.NoError(t, err)

	assert.Equal(t, int64(2), stockOf(t, db, w.ID))
	_, items := ledgerRows(t, db)
	assert.Len(t, items, 1)
	assert.Equal(t, float64(90), items[0].Price)
}

func TestReturnAdjustsWallpaperLinesOnly(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 0, 100, 60)
	p := seedProduct(t, db, node, "glue", 0, 50, 30)

	err := svc.Return(context.Background(), domain.ReturnRequest{
		Items: []domain.LineItem{
			{Kind: domain.KindWallpaper, Article: "A1", Batch: "B1", Quantity: 2},
			{Kind: domain.KindAdditionalProduct, Name: "glue", Quantity: 1},
		},
		TotalPrice: 230,
	})
	assert.NoError(t, err)

	_, items := ledgerRows(t, db)
	assert.Len(t, items, 2)
	for _, item := range items {
		switch item.ItemTable {
		case domain.TableWallpapers:
			assert.Equal(t, w.ID, item.ItemID)
			assert.Equal(t, float64(90), item.Price)
		case domain.TableAdditionalProducts:
			assert.Equal(t, p.ID, item.ItemID)
			assert.Equal(t, float64(50), item.Price)
		}
	}
}

func TestDefectRemovesStockExactly(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 7, 100, 60)

	err := svc.Defect(context.Background(), domain.DefectRequest{
		Items: []domain.LineItem{
			{Kind: domain.KindWallpaper, Article: "A1", Batch: "B1", Quantity: 3},
		},
	})
	assert.NoError(t, err)

	assert.Equal(t, int64(4), stockOf(t, db, w.ID))
	headers, items := ledgerRows(t, db)
	assert.Len(t, headers, 1)
	assert.Equal(t, domain.TypeDefect, headers[0].Type)
	assert.Equal(t, int64(0), headers[0].Discount)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].Quantity)
}

func TestDefectInsufficientStockRollsBack(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 2, 100, 60)

	err := svc.Defect(context.Background(), domain.DefectRequest{
		Items: []domain.LineItem{
			{Kind: domain.KindWallpaper, Article: "A1", Batch: "B1", Quantity: 3},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), stockOf(t, db, w.ID))
}

func TestSupplyCreatesTypeAndBatch(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)

	err := svc.Supply(context.Background(), domain.SupplyRequest{
		SupplierID: s.ID,
		Products: []domain.SupplyProduct{
			{
				Article:      "NEW-1",
				Description:  "Floral vinyl",
				BaseMaterial: "non-woven",
				Embossing:    "smooth",
				Manufacturer: "Grandeco",
				Type:         catalogdomain.RollWidthWide,
				Batch:        "L1",
				Shelf:        3,
				Row:          4,
				Quantity:     12,
				CostPrice:    60,
			},
		},
	})
	assert.NoError(t, err)

	var wt catalogdomain.WallpaperType
	assert.NoError(t, db.First(&wt, "article = ?", "NEW-1").Error)

	var w catalogdomain.Wallpaper
	assert.NoError(t, db.First(&w, "wallpaper_type_id = ? AND batch = ?", wt.ID, "L1").Error)
	assert.Equal(t, int64(12), w.Quantity)
	assert.Equal(t, int64(90), w.Price)
	assert.Equal(t, int64(60), w.CostPrice)

	headers, items := ledgerRows(t, db)
	assert.Len(t, headers, 1)
	assert.Equal(t, domain.TypeSupply, headers[0].Type)
	assert.Len(t, items, 1)
	assert.Equal(t, float64(90), items[0].Price)
}

func TestSupplyResupplySameBatchAccumulates(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 5, 100, 60)

	err := svc.Supply(context.Background(), domain.SupplyRequest{
		SupplierID: s.ID,
		Products: []domain.SupplyProduct{
			{
				Article:      "A1",
				Description:  "Vinyl on non-woven",
				BaseMaterial: "non-woven",
				Embossing:    "textured",
				Manufacturer: "Grandeco",
				Type:         catalogdomain.RollWidthWide,
				Batch:        "B1",
				Shelf:        9,
				Row:          8,
				Quantity:     7,
				CostPrice:    80,
			},
		},
	})
	assert.NoError(t, err)

	var batches []catalogdomain.Wallpaper
	assert.NoError(t, db.Find(&batches, "wallpaper_type_id = ?", w.WallpaperTypeID).Error)
	assert.Len(t, batches, 1)
	assert.Equal(t, int64(12), batches[0].Quantity)
	assert.Equal(t, 9, batches[0].Shelf)
	assert.Equal(t, 8, batches[0].Row)
	assert.Equal(t, int64(80), batches[0].CostPrice)
	assert.Equal(t, int64(120), batches[0].Price)
}

func TestSupplyPropagatesPriceExceptRemaining(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)
	w := seedWallpaper(t, db, node, s.ID, "A1", "B1", 5, 100, 60)

	leftover := catalogdomain.Wallpaper{
		ID:              node.Generate().Int64(),
		WallpaperTypeID: w.WallpaperTypeID,
		Batch:           "OLD",
		Quantity:        1,
		Price:           70,
		CostPrice:       50,
		IsRemaining:     true,
	}
	assert.NoError(t, db.Create(&leftover).Error)

	err := svc.Supply(context.Background(), domain.SupplyRequest{
		SupplierID: s.ID,
		Products: []domain.SupplyProduct{
			{
				Article:      "A1",
				Description:  "Vinyl on non-woven",
				BaseMaterial: "non-woven",
				Embossing:    "textured",
				Manufacturer: "Grandeco",
				Type:         catalogdomain.RollWidthWide,
				Batch:        "B2",
				Quantity:     4,
				CostPrice:    80,
			},
		},
	})
	assert.NoError(t, err)

	var batches []catalogdomain.Wallpaper
	assert.NoError(t, db.Order("batch").Find(&batches, "wallpaper_type_id = ?", w.WallpaperTypeID).Error)
	assert.Len(t, batches, 3)

	byBatch := make(map[string]catalogdomain.Wallpaper, len(batches))
	for _, b := range batches {
		byBatch[b.Batch] = b
	}
	assert.Equal(t, int64(120), byBatch["B1"].Price)
	assert.Equal(t, int64(120), byBatch["B2"].Price)
	assert.Equal(t, int64(70), byBatch["OLD"].Price)
}

func TestSupplyUnknownSupplier(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Supply(context.Background(), domain.SupplyRequest{
		SupplierID: 42,
		Products: []domain.SupplyProduct{
			{
				Article:   "A1",
				Type:      catalogdomain.RollWidthWide,
				Batch:     "B1",
				Quantity:  1,
				CostPrice: 10,
			},
		},
	})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestSupplyRejectsInvalidRollWidthUpFront(t *testing.T) {
	svc, db, node := newTestService(t)
	s := seedSupplier(t, db, node)

	err := svc.Supply(context.Background(), domain.SupplyRequest{
		SupplierID: s.ID,
		Products: []domain.SupplyProduct{
			{
				Article:   "OK-1",
				Type:      catalogdomain.RollWidthWide,
				Batch:     "L1",
				Quantity:  3,
				CostPrice: 40,
			},
			{
				Article:   "BAD-1",
				Type:      "2.00",
				Batch:     "L1",
				Quantity:  3,
				CostPrice: 40,
			},
		},
	})
	assert.ErrorIs(t, err, catalogdomain.ErrInvalidRollWidth)

	var count int64
	assert.NoError(t, db.Model(&catalogdomain.WallpaperType{}).Count(&count).Error)
	assert.Zero(t, count)
}

// failingBatchRepo lets the first batch insert through and fails the
// next one, simulating a store error mid-posting.
type failingBatchRepo struct {
	domain.Repository
	batchInserts int
}

var errBatchInsert = errors.New("batch insert failed")

func (r *failingBatchRepo) CreateWallpaper(ctx context.Context, db *gorm.DB, w *catalogdomain.Wallpaper) error {
	r.batchInserts++
	if r.batchInserts > 1 {
		return errBatchInsert
	}
	return r.Repository.CreateWallpaper(ctx, db, w)
}

func TestSupplyRollsBackAfterPartialUpsert(t *testing.T) {
	_, db, node := newTestService(t)
	s := seedSupplier(t, db, node)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  &failingBatchRepo{Repository: repository.Provide()},
	})

	err := svc.Supply(context.Background(), domain.SupplyRequest{
		SupplierID: s.ID,
		Products: []domain.SupplyProduct{
			{
				Article:   "OK-1",
				Type:      catalogdomain.RollWidthWide,
				Batch:     "L1",
				Quantity:  3,
				CostPrice: 40,
			},
			{
				Article:   "OK-2",
				Type:      catalogdomain.RollWidthWide,
				Batch:     "L1",
				Quantity:  3,
				CostPrice: 40,
			},
		},
	})
	assert.ErrorIs(t, err, errBatchInsert)

	// The first product's type and batch were written inside the unit of
	// work; nothing of them may survive the rollback.
	var count int64
	assert.NoError(t, db.Model(&catalogdomain.WallpaperType{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.NoError(t, db.Model(&catalogdomain.Wallpaper{}).Count(&count).Error)
	assert.Zero(t, count)

	headers, items := ledgerRows(t, db)
	assert.Empty(t, headers)
	assert.Empty(t, items)
}
