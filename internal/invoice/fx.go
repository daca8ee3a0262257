package invoice

import (
	"github.com/evabo/wasteflow/internal/invoice/repository"
	"github.com/evabo/wasteflow/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewEmailNotifier),
	fx.Provide(service.New),
)
