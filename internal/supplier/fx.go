package supplier

import (
	"github.com/tapetashop/tapeta/internal/supplier/repository"
	"github.com/tapetashop/tapeta/internal/supplier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("supplier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
