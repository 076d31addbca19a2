package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/tapetashop/tapeta/internal/transaction/domain"
	"go.uber.org/zap"
)

// Generator renders purchase receipts. A header discount is spread per
// unit over the wallpaper lines, matching how the shop prices rolls at
// the till; ancillary lines are printed at face value.
type Generator struct {
	log *zap.Logger
}

func New(log *zap.Logger) domain.ReceiptGenerator {
	return &Generator{log: log.Named("pdf.receipt")}
}

func (g *Generator) Generate(data domain.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(12, "Sales receipt", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(10,
		text.NewCol(12, fmt.Sprintf("Transaction #%d", data.TransactionID), props.Text{Size: 9}),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	discountPerUnit := discountPerWallpaperUnit(data)
	for _, item := range data.Items {
		price := item.Price
		if item.IsWallpaper {
			price -= discountPerUnit
		}
		amount := price * float64(item.Quantity)
		m.AddRow(10,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatAmount(price), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatAmount(amount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	if data.Discount > 0 {
		m.AddRow(10,
			col.New(8),
			text.NewCol(2, "Discount", props.Text{Size: 9}),
			text.NewCol(2, formatAmount(float64(data.Discount)), props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, formatAmount(data.Total), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate receipt pdf: %w", err)
	}

	g.log.Debug("receipt rendered",
		zap.Int64("transaction_id", data.TransactionID),
		zap.Int("items", len(data.Items)),
	)
	return doc.GetBytes(), nil
}

func discountPerWallpaperUnit(data domain.ReceiptData) float64 {
	if data.Discount == 0 {
		return 0
	}
	var wallpaperUnits int64
	for _, item := range data.Items {
		if item.IsWallpaper {
			wallpaperUnits += item.Quantity
		}
	}
	if wallpaperUnits == 0 {
		return 0
	}
	return float64(data.Discount) / float64(wallpaperUnits)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
