package domain

import "time"

// RefreshToken is a persisted session artifact. A refresh is only
// honored while its token row exists; rotation deletes the old row and
// inserts the replacement.
type RefreshToken struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"type:text;not null;index"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }
