package product

import (
	"github.com/evabo/wasteflow/internal/product/repository"
	"github.com/evabo/wasteflow/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
