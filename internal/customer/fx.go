package customer

import (
	"github.com/evabo/wasteflow/internal/customer/repository"
	"github.com/evabo/wasteflow/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
