package providers

import (
	"github.com/tapetashop/tapeta/internal/providers/pdf"
	"github.com/tapetashop/tapeta/internal/providers/sms"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	fx.Provide(pdf.New),
	fx.Provide(sms.New),
)
