package catalog

import (
	"github.com/tapetashop/tapeta/internal/catalog/repository"
	"github.com/tapetashop/tapeta/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
