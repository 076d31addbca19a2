package domain

import "time"

// Type is the movement kind of a posted transaction.
type Type string

const (
	TypePurchase Type = "purchase"
	TypeReturn   Type = "return"
	TypeDefect   Type = "defect"
	TypeSupply   Type = "supply"
)

// ItemTable names the inventory table a ledger line points into.
type ItemTable string

const (
	TableWallpapers         ItemTable = "wallpapers"
	TableAdditionalProducts ItemTable = "additional_products"
)

// Transaction is a ledger header. Rows are written once inside the
// posting's unit of work and never updated afterwards.
type Transaction struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Type      Type      `json:"type" gorm:"type:text;not null"`
	Discount  int64     `json:"discount" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Transaction) TableName() string { return "transactions" }

// TransactionItem is one ledger line. Price and cost_price are
// point-in-time snapshots, not live references into inventory.
type TransactionItem struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	TransactionID int64     `json:"transaction_id" gorm:"not null;index"`
	ItemTable     ItemTable `json:"item_table" gorm:"column:item_table;type:text;not null"`
	ItemID        int64     `json:"item_id" gorm:"not null"`
	Price         float64   `json:"price" gorm:"not null"`
	CostPrice     int64     `json:"cost_price" gorm:"not null"`
	Quantity      int64     `json:"quantity" gorm:"not null"`
}

func (TransactionItem) TableName() string { return "transaction_items" }
