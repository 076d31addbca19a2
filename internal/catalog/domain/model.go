package domain

import "time"

// RollWidth is the physical roll width of a wallpaper type, in meters.
type RollWidth string

const (
	RollWidthWide   RollWidth = "1.06"
	RollWidthNarrow RollWidth = "0.53"
)

func (w RollWidth) Valid() bool {
	return w == RollWidthWide || w == RollWidthNarrow
}

// WallpaperType is a catalog entry identified by its globally unique article.
type WallpaperType struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Article         string    `json:"article" gorm:"type:text;not null;uniqueIndex:ux_wallpaper_types_article"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	SupplierID      int64     `json:"supplier_id" gorm:"not null"`
	BaseMaterial    string    `json:"base_material" gorm:"type:text;not null"`
	Embossing       string    `json:"embossing" gorm:"type:text;not null"`
	Manufacturer    string    `json:"manufacturer" gorm:"type:text;not null"`
	ImageURL        string    `json:"image_url" gorm:"type:text"`
	Image3DURL      string    `json:"image_3d_url" gorm:"column:image_3d_url;type:text"`
	Type            RollWidth `json:"type" gorm:"type:text;not null"`
	PriceTagPrinted bool      `json:"price_tag_printed" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (WallpaperType) TableName() string { return "wallpaper_types" }

// Wallpaper is one physical stock batch of a wallpaper type.
// Batches flagged is_remaining keep their own clearance price and are
// exempt from type-wide price propagation.
type Wallpaper struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	WallpaperTypeID int64     `json:"wallpaper_type_id" gorm:"not null;index"`
	Batch           string    `json:"batch" gorm:"type:text;not null"`
	Shelf           int       `json:"shelf" gorm:"not null"`
	Row             int       `json:"row" gorm:"column:row;not null"`
	Quantity        int64     `json:"quantity" gorm:"not null"`
	Price           int64     `json:"price" gorm:"not null"`
	CostPrice       int64     `json:"cost_price" gorm:"not null"`
	IsRemaining     bool      `json:"is_remaining" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Wallpaper) TableName() string { return "wallpapers" }

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationProcessed ReservationStatus = "processed"
	ReservationCompleted ReservationStatus = "completed"
)

type Reservation struct {
	ID        int64             `json:"id" gorm:"primaryKey"`
	UserID    int64             `json:"user_id" gorm:"not null"`
	Status    ReservationStatus `json:"status" gorm:"type:text;not null"`
	CreatedAt time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Reservation) TableName() string { return "reservations" }

type ReservationItem struct {
	ID            int64 `json:"id" gorm:"primaryKey"`
	ReservationID int64 `json:"reservation_id" gorm:"not null;index"`
	ItemID        int64 `json:"item_id" gorm:"not null;index"`
	Quantity      int64 `json:"quantity" gorm:"not null;default:1"`
}

func (ReservationItem) TableName() string { return "reservation_items" }
