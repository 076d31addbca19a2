package additionalproduct

import (
	"github.com/tapetashop/tapeta/internal/additionalproduct/repository"
	"github.com/tapetashop/tapeta/internal/additionalproduct/service"
	"go.uber.org/fx"
)

var Module = fx.Module("additionalproduct.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
