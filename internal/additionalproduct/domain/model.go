package domain

import "time"

// AdditionalProduct is a non-wallpaper item sold alongside rolls, such
// as glue or tools. Stock is keyed by the product name.
type AdditionalProduct struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	Quantity  int64     `json:"quantity"`
	Price     int64     `json:"price"`
	CostPrice int64     `gorm:"column:cost_price" json:"cost_price"`
	CreatedAt time.Time `json:"created_at"`
}

func (AdditionalProduct) TableName() string {
	return "additional_products"
}
