package migration

import (
	productdomain "github.com/tapetashop/tapeta/internal/additionalproduct/domain"
	authdomain "github.com/tapetashop/tapeta/internal/auth/domain"
	catalogdomain "github.com/tapetashop/tapeta/internal/catalog/domain"
	"github.com/tapetashop/tapeta/internal/config"
	"github.com/tapetashop/tapeta/internal/seed"
	supplierdomain "github.com/tapetashop/tapeta/internal/supplier/domain"
	transactiondomain "github.com/tapetashop/tapeta/internal/transaction/domain"
	userdomain "github.com/tapetashop/tapeta/internal/user/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// The sqlite setup has no migration driver wired; build the
			// schema from the models instead.
			if err := conn.AutoMigrate(
				&supplierdomain.Supplier{},
				&catalogdomain.WallpaperType{},
				&catalogdomain.Wallpaper{},
				&catalogdomain.Reservation{},
				&catalogdomain.ReservationItem{},
				&productdomain.AdditionalProduct{},
				&transactiondomain.Transaction{},
				&transactiondomain.TransactionItem{},
				&userdomain.User{},
				&authdomain.RefreshToken{},
			); err != nil {
				return err
			}
		}

		if cfg.BootstrapAdminPhone != "" {
			return seed.EnsureAdmin(conn, cfg)
		}
		return nil
	}),
)
