package report

import (
	"github.com/evabo/wasteflow/internal/report/repository"
	"github.com/evabo/wasteflow/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
