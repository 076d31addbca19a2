package transaction

import (
	"github.com/tapetashop/tapeta/internal/transaction/repository"
	"github.com/tapetashop/tapeta/internal/transaction/service"
	"go.uber.org/fx"
)

var Module = fx.Module("transaction.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
