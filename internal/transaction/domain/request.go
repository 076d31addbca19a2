package domain

import "github.com/tapetashop/tapeta/internal/catalog/domain"

// ItemKind tags a request line as either a wallpaper batch or an
// ancillary product. Unknown tags are rejected before any store access.
type ItemKind string

const (
	KindWallpaper         ItemKind = "wallpaper"
	KindAdditionalProduct ItemKind = "additional_product"
)

// LineItem is one logical line of a posting request. Wallpaper lines
// are addressed by (article, batch); ancillary lines by product name.
type LineItem struct {
	Kind     ItemKind `json:"type"`
	Article  string   `json:"article,omitempty"`
	Batch    string   `json:"batch,omitempty"`
	Name     string   `json:"name,omitempty"`
	Quantity int64    `json:"quantity"`
}

type PurchaseRequest struct {
	Items        []LineItem `json:"items"`
	Discount     int64      `json:"discount"`
	PrintReceipt bool       `json:"print_receipt"`
}

type ReturnRequest struct {
	Items      []LineItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
}

type DefectRequest struct {
	Items []LineItem `json:"items"`
}

// SupplyProduct is one product definition of a supply posting. The
// retail price is derived from cost_price by a fixed markup and is
// never supplied by the caller.
type SupplyProduct struct {
	Article      string           `json:"article"`
	Description  string           `json:"description"`
	BaseMaterial string           `json:"base_material"`
	Embossing    string           `json:"embossing"`
	Manufacturer string           `json:"manufacturer"`
	ImageURL     string           `json:"image_url"`
	Image3DURL   string           `json:"image_3d_url"`
	Type         domain.RollWidth `json:"type"`
	Batch        string           `json:"batch"`
	Shelf        int              `json:"shelf"`
	Row          int              `json:"row"`
	Quantity     int64            `json:"quantity"`
	CostPrice    int64            `json:"cost_price"`
}

type SupplyRequest struct {
	SupplierID int64           `json:"supplier_id"`
	Products   []SupplyProduct `json:"products"`
}
