package payment

import (
	"github.com/evabo/wasteflow/internal/payment/repository"
	"github.com/evabo/wasteflow/internal/payment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
