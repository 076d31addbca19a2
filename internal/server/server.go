package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tapetashop/tapeta/internal/additionalproduct"
	additionalproductdomain "github.com/tapetashop/tapeta/internal/additionalproduct/domain"
	"github.com/tapetashop/tapeta/internal/auth"
	authdomain "github.com/tapetashop/tapeta/internal/auth/domain"
	"github.com/tapetashop/tapeta/internal/auth/token"
	"github.com/tapetashop/tapeta/internal/catalog"
	catalogdomain "github.com/tapetashop/tapeta/internal/catalog/domain"
	"github.com/tapetashop/tapeta/internal/config"
	"github.com/tapetashop/tapeta/internal/observability/metrics"
	"github.com/tapetashop/tapeta/internal/providers"
	"github.com/tapetashop/tapeta/internal/supplier"
	supplierdomain "github.com/tapetashop/tapeta/internal/supplier/domain"
	"github.com/tapetashop/tapeta/internal/transaction"
	transactiondomain "github.com/tapetashop/tapeta/internal/transaction/domain"
	"github.com/tapetashop/tapeta/internal/user"
	userdomain "github.com/tapetashop/tapeta/internal/user/domain"
	"github.com/tapetashop/tapeta/internal/verification"
	verificationdomain "github.com/tapetashop/tapeta/internal/verification/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	metrics.Module,
	providers.Module,
	auth.Module,
	user.Module,
	supplier.Module,
	catalog.Module,
	additionalproduct.Module,
	transaction.Module,
	verification.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, m *metrics.Metrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(metrics.GinMiddleware(m))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	tokens          *token.Manager
	obsMetrics      *metrics.Metrics
	authSvc         authdomain.Service
	userSvc         userdomain.Service
	supplierSvc     supplierdomain.Service
	catalogSvc      catalogdomain.Service
	productSvc      additionalproductdomain.Service
	transactionSvc  transactiondomain.Service
	verificationSvc verificationdomain.Service
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	Tokens          *token.Manager
	ObsMetrics      *metrics.Metrics
	AuthSvc         authdomain.Service
	UserSvc         userdomain.Service
	SupplierSvc     supplierdomain.Service
	CatalogSvc      catalogdomain.Service
	ProductSvc      additionalproductdomain.Service
	TransactionSvc  transactiondomain.Service
	VerificationSvc verificationdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		tokens:          p.Tokens,
		obsMetrics:      p.ObsMetrics,
		authSvc:         p.AuthSvc,
		userSvc:         p.UserSvc,
		supplierSvc:     p.SupplierSvc,
		catalogSvc:      p.CatalogSvc,
		productSvc:      p.ProductSvc,
		transactionSvc:  p.TransactionSvc,
		verificationSvc: p.VerificationSvc,
	}

	svc.registerAuthRoutes()
	svc.registerVerificationRoutes()
	svc.registerCatalogRoutes()
	svc.registerTransactionRoutes()
	svc.registerUserRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)
	auth.POST("/token", s.RefreshToken)
	auth.DELETE("/logout", s.Logout)
}

func (s *Server) registerVerificationRoutes() {
	v := s.engine.Group("/verification")

	v.POST("/send-verification-code", s.SendVerificationCode)
	v.POST("/verify-code", s.VerifyCode)
}

func (s *Server) registerCatalogRoutes() {
	authed := s.engine.Group("/", s.AuthRequired())
	manage := s.engine.Group("/", s.AuthRequired(userdomain.RoleManager, userdomain.RoleAdmin))

	authed.GET("/suppliers", s.ListSuppliers)
	authed.GET("/suppliers/:id", s.GetSupplier)
	authed.GET("/suppliers/name/:name", s.GetSupplierIDByName)

	authed.GET("/wallpaper-types", s.ListWallpaperTypes)
	authed.GET("/wallpaper-types/:id/batches", s.ListWallpaperBatches)
	authed.GET("/wallpapers/:id", s.GetWallpaper)
	manage.PUT("/wallpapers/:id", s.UpdateWallpaper)
	manage.DELETE("/wallpapers/:id", s.DeleteWallpaper)
	manage.PATCH("/wallpapers/:id/toggle-remaining", s.ToggleWallpaperRemaining)

	authed.GET("/additional-products", s.ListAdditionalProducts)
	authed.GET("/additional-products/:id", s.GetAdditionalProduct)
	manage.PUT("/additional-products/:id", s.UpdateAdditionalProduct)
	manage.DELETE("/additional-products/:id", s.DeleteAdditionalProduct)
}

func (s *Server) registerTransactionRoutes() {
	t := s.engine.Group("/transactions", s.AuthRequired(userdomain.RoleManager, userdomain.RoleAdmin))

	t.POST("/purchase", s.PostPurchase)
	t.POST("/return", s.PostReturn)
	t.POST("/defect", s.PostDefect)
	t.POST("/supply", s.PostSupply)
}

func (s *Server) registerUserRoutes() {
	u := s.engine.Group("/users", s.AuthRequired(userdomain.RoleAdmin))

	u.GET("", s.ListUsers)
	u.PUT("/:user_id/role", s.SetUserRole)
}
