package service

import (
	"context"
	"fmt"
	"math"

	"github.com/bwmarrin/snowflake"
	catalog "github.com/tapetashop/tapeta/internal/catalog/domain"
	"github.com/tapetashop/tapeta/internal/transaction/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Receipts domain.ReceiptGenerator `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	receipts domain.ReceiptGenerator
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("transaction.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		receipts: p.Receipts,
	}
}

func validateItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return domain.ErrEmptyItems
	}
	for _, item := range items {
		switch item.Kind {
		case domain.KindWallpaper, domain.KindAdditionalProduct:
		default:
			return fmt.Errorf("%w: %q", domain.ErrUnknownItemKind, item.Kind)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, item.Quantity)
		}
	}
	return nil
}

// resolveLine maps a logical request line to a concrete inventory row.
// It reads through the posting's own handle so it observes writes made
// earlier in the same unit of work.
func (s *Service) resolveLine(ctx context.Context, tx *gorm.DB, item domain.LineItem) (postingLine, error) {
	switch item.Kind {
	case domain.KindWallpaper:
		w, err := s.repo.FindWallpaperByArticleBatch(ctx, tx, item.Article, item.Batch)
		if err != nil {
			return postingLine{}, fmt.Errorf("resolve wallpaper: %w", err)
		}
		if w == nil {
			return postingLine{}, fmt.Errorf("%w: article %q batch %q", domain.ErrWallpaperNotFound, item.Article, item.Batch)
		}
		return postingLine{
			table:       domain.TableWallpapers,
			itemID:      w.ID,
			description: fmt.Sprintf("%s %s", w.Article, w.Description),
			quantity:    item.Quantity,
			price:       float64(w.Price),
			costPrice:   w.CostPrice,
		}, nil
	case domain.KindAdditionalProduct:
		p, err := s.repo.FindProductByName(ctx, tx, item.Name)
		if err != nil {
			return postingLine{}, fmt.Errorf("resolve product: %w", err)
		}
		if p == nil {
			return postingLine{}, fmt.Errorf("%w: name %q", domain.ErrProductNotFound, item.Name)
		}
		return postingLine{
			table:       domain.TableAdditionalProducts,
			itemID:      p.ID,
			description: p.Name,
			quantity:    item.Quantity,
			price:       float64(p.Price),
			costPrice:   p.CostPrice,
		}, nil
	default:
		return postingLine{}, fmt.Errorf("%w: %q", domain.ErrUnknownItemKind, item.Kind)
	}
}

func (s *Service) resolveAll(ctx context.Context, tx *gorm.DB, items []domain.LineItem) ([]postingLine, error) {
	lines := make([]postingLine, 0, len(items))
	for _, item := range items {
		line, err := s.resolveLine(ctx, tx, item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// withdraw decrements stock for one line, failing when on-hand
// quantity does not cover the request.
func (s *Service) withdraw(ctx context.Context, tx *gorm.DB, line postingLine) error {
	var ok bool
	var err error
	switch line.table {
	case domain.TableWallpapers:
		ok, err = s.repo.AdjustWallpaperStock(ctx, tx, line.itemID, -line.quantity)
	default:
		ok, err = s.repo.AdjustProductStock(ctx, tx, line.itemID, -line.quantity)
	}
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s needs %d", domain.ErrInsufficientStock, line.description, line.quantity)
	}
	return nil
}

func (s *Service) restock(ctx context.Context, tx *gorm.DB, line postingLine) error {
	var err error
	switch line.table {
	case domain.TableWallpapers:
		_, err = s.repo.AdjustWallpaperStock(ctx, tx, line.itemID, line.quantity)
	default:
		_, err = s.repo.AdjustProductStock(ctx, tx, line.itemID, line.quantity)
	}
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

func (s *Service) writeLedger(ctx context.Context, tx *gorm.DB, txType domain.Type, discount int64, lines []postingLine) (int64, error) {
	header := &domain.Transaction{
		ID:       s.genID.Generate().Int64(),
		Type:     txType,
		Discount: discount,
	}
	if err := s.repo.CreateTransaction(ctx, tx, header); err != nil {
		return 0, fmt.Errorf("create transaction: %w", err)
	}
	for _, line := range lines {
		item := &domain.TransactionItem{
			ID:            s.genID.Generate().Int64(),
			TransactionID: header.ID,
			ItemTable:     line.table,
			ItemID:        line.itemID,
			Price:         line.price,
			CostPrice:     line.costPrice,
			Quantity:      line.quantity,
		}
		if err := s.repo.CreateTransactionItem(ctx, tx, item); err != nil {
			return 0, fmt.Errorf("create transaction item: %w", err)
		}
	}
	return header.ID, nil
}

func (s *Service) Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResult, error) {
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	var lines []postingLine
	var transactionID int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		lines, err = s.resolveAll(ctx, tx, req.Items)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if err := s.withdraw(ctx, tx, line); err != nil {
				return err
			}
		}
		transactionID, err = s.writeLedger(ctx, tx, domain.TypePurchase, req.Discount, lines)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("purchase posted",
		zap.Int64("transaction_id", transactionID),
		zap.Int("lines", len(lines)),
		zap.Int64("discount", req.Discount),
	)

	result := &domain.PurchaseResult{TransactionID: transactionID}
	if req.PrintReceipt && s.receipts != nil {
		// The posting is already committed. A formatter failure is
		// logged and the caller gets the result without a document.
		receipt, err := s.receipts.Generate(buildReceiptData(transactionID, req.Discount, lines))
		if err != nil {
			s.log.Error("render receipt", zap.Int64("transaction_id", transactionID), zap.Error(err))
		} else {
			result.Receipt = receipt
		}
	}
	return result, nil
}

func (s *Service) Return(ctx context.Context, req domain.ReturnRequest) error {
	if err := validateItems(req.Items); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines, err := s.resolveAll(ctx, tx, req.Items)
		if err != nil {
			return err
		}
		lines = reconcile(lines, req.TotalPrice)
		for _, line := range lines {
			if err := s.restock(ctx, tx, line); err != nil {
				return err
			}
		}
		transactionID, err := s.writeLedger(ctx, tx, domain.TypeReturn, 0, lines)
		if err != nil {
			return err
		}
		s.log.Info("return posted",
			zap.Int64("transaction_id", transactionID),
			zap.Int("lines", len(lines)),
			zap.Float64("declared_total", req.TotalPrice),
		)
		return nil
	})
}

func (s *Service) Defect(ctx context.Context, req domain.DefectRequest) error {
	if err := validateItems(req.Items); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines, err := s.resolveAll(ctx, tx, req.Items)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if err := s.withdraw(ctx, tx, line); err != nil {
				return err
			}
		}
		transactionID, err := s.writeLedger(ctx, tx, domain.TypeDefect, 0, lines)
		if err != nil {
			return err
		}
		s.log.Info("defect posted",
			zap.Int64("transaction_id", transactionID),
			zap.Int("lines", len(lines)),
		)
		return nil
	})
}

// markupFactor derives the retail price from the supplier cost price.
const markupFactor = 1.5

func (s *Service) Supply(ctx context.Context, req domain.SupplyRequest) error {
	if len(req.Products) == 0 {
		return domain.ErrEmptyItems
	}
	for _, p := range req.Products {
		if p.Quantity <= 0 {
			return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, p.Quantity)
		}
		if !p.Type.Valid() {
			return fmt.Errorf("%w: article %q", catalog.ErrInvalidRollWidth, p.Article)
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.repo.SupplierExists(ctx, tx, req.SupplierID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: id %d", domain.ErrSupplierNotFound, req.SupplierID)
		}

		lines := make([]postingLine, 0, len(req.Products))
		for _, p := range req.Products {
			line, err := s.supplyProduct(ctx, tx, req.SupplierID, p)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}

		transactionID, err := s.writeLedger(ctx, tx, domain.TypeSupply, 0, lines)
		if err != nil {
			return err
		}
		s.log.Info("supply posted",
			zap.Int64("transaction_id", transactionID),
			zap.Int64("supplier_id", req.SupplierID),
			zap.Int("products", len(lines)),
		)
		return nil
	})
}

// supplyProduct upserts the catalog entry by article, upserts the stock
// batch by (type, batch) and propagates the derived price to every
// non-remaining batch of the type.
func (s *Service) supplyProduct(ctx context.Context, tx *gorm.DB, supplierID int64, p domain.SupplyProduct) (postingLine, error) {
	price := int64(math.Round(float64(p.CostPrice) * markupFactor))

	t, err := s.repo.FindTypeByArticle(ctx, tx, p.Article)
	if err != nil {
		return postingLine{}, fmt.Errorf("find type: %w", err)
	}
	if t == nil {
		t = &catalog.WallpaperType{
			ID:           s.genID.Generate().Int64(),
			Article:      p.Article,
			Description:  p.Description,
			SupplierID:   supplierID,
			BaseMaterial: p.BaseMaterial,
			Embossing:    p.Embossing,
			Manufacturer: p.Manufacturer,
			ImageURL:     p.ImageURL,
			Image3DURL:   p.Image3DURL,
			Type:         p.Type,
		}
		if err := s.repo.CreateType(ctx, tx, t); err != nil {
			return postingLine{}, fmt.Errorf("create type: %w", err)
		}
	} else {
		t.Description = p.Description
		t.SupplierID = supplierID
		t.BaseMaterial = p.BaseMaterial
		t.Embossing = p.Embossing
		t.Manufacturer = p.Manufacturer
		t.ImageURL = p.ImageURL
		t.Image3DURL = p.Image3DURL
		t.Type = p.Type
		if err := s.repo.UpdateTypeAttrs(ctx, tx, t); err != nil {
			return postingLine{}, fmt.Errorf("update type: %w", err)
		}
	}

	w, err := s.repo.FindWallpaperByTypeBatch(ctx, tx, t.ID, p.Batch)
	if err != nil {
		return postingLine{}, fmt.Errorf("find batch: %w", err)
	}
	if w == nil {
		w = &catalog.Wallpaper{
			ID:              s.genID.Generate().Int64(),
			WallpaperTypeID: t.ID,
			Batch:           p.Batch,
			Shelf:           p.Shelf,
			Row:             p.Row,
			Quantity:        p.Quantity,
			Price:           price,
			CostPrice:       p.CostPrice,
		}
		if err := s.repo.CreateWallpaper(ctx, tx, w); err != nil {
			return postingLine{}, fmt.Errorf("create batch: %w", err)
		}
	} else {
		if err := s.repo.RestockWallpaper(ctx, tx, w.ID, p.Quantity, p.Shelf, p.Row, p.CostPrice, price); err != nil {
			return postingLine{}, fmt.Errorf("restock batch: %w", err)
		}
	}

	// Clearance batches keep their own price.
	if err := s.repo.PropagateTypePrice(ctx, tx, t.ID, price); err != nil {
		return postingLine{}, fmt.Errorf("propagate price: %w", err)
	}

	return postingLine{
		table:       domain.TableWallpapers,
		itemID:      w.ID,
		description: fmt.Sprintf("%s %s", p.Article, p.Description),
		quantity:    p.Quantity,
		price:       float64(price),
		costPrice:   p.CostPrice,
	}, nil
}

func buildReceiptData(transactionID, discount int64, lines []postingLine) domain.ReceiptData {
	items := make([]domain.ReceiptItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		items = append(items, domain.ReceiptItem{
			Description: line.description,
			Quantity:    line.quantity,
			Price:       line.price,
			IsWallpaper: line.table == domain.TableWallpapers,
		})
		total += line.price * float64(line.quantity)
	}
	return domain.ReceiptData{
		TransactionID: transactionID,
		Items:         items,
		Discount:      discount,
		Total:         total - float64(discount),
	}
}
