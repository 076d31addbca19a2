package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/tapetashop/tapeta/internal/config"
	userdomain "github.com/tapetashop/tapeta/internal/user/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin seeds the bootstrap admin account so a fresh install has
// someone able to promote other users. Existing accounts are left
// untouched.
func EnsureAdmin(db *gorm.DB, cfg config.Config) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if cfg.BootstrapAdminPhone == "" || cfg.BootstrapAdminPassword == "" {
		return errors.New("bootstrap admin phone and password are required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&userdomain.User{}).
			Where("phone_number = ?", cfg.BootstrapAdminPhone).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		return tx.Create(&userdomain.User{
			ID:          node.Generate().Int64(),
			PhoneNumber: cfg.BootstrapAdminPhone,
			Password:    string(hashed),
			Name:        "Administrator",
			Role:        userdomain.RoleAdmin,
		}).Error
	})
}
