package domain

type Supplier struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:text;not null"`
	Email       string `json:"email" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`
}

func (Supplier) TableName() string { return "suppliers" }
