package message

import (
	"github.com/evabo/wasteflow/internal/message/repository"
	"github.com/evabo/wasteflow/internal/message/service"
	"go.uber.org/fx"
)

var Module = fx.Module("message.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
