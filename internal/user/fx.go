package user

import (
	"github.com/tapetashop/tapeta/internal/user/repository"
	"github.com/tapetashop/tapeta/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
