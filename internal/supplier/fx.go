package supplier

import (
	"github.com/evabo/wasteflow/internal/supplier/repository"
	"github.com/evabo/wasteflow/internal/supplier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("supplier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
