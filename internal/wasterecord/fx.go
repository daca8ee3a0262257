package wasterecord

import (
	"github.com/evabo/wasteflow/internal/wasterecord/repository"
	"github.com/evabo/wasteflow/internal/wasterecord/service"
	"go.uber.org/fx"
)

var Module = fx.Module("wasterecord.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
