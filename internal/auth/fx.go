package auth

import (
	"github.com/tapetashop/tapeta/internal/auth/repository"
	"github.com/tapetashop/tapeta/internal/auth/service"
	"github.com/tapetashop/tapeta/internal/auth/token"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(token.NewManager),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
