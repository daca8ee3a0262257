package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/clock"
	"github.com/evabo/wasteflow/internal/config"
	"github.com/evabo/wasteflow/internal/migration"
	"github.com/evabo/wasteflow/internal/observability"
	"github.com/evabo/wasteflow/internal/server"
	"github.com/evabo/wasteflow/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
