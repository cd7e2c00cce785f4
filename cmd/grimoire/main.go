package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/internal/clock"
	"github.com/spellworks/grimoire/internal/config"
	"github.com/spellworks/grimoire/internal/migration"
	"github.com/spellworks/grimoire/internal/observability"
	"github.com/spellworks/grimoire/internal/server"
	"github.com/spellworks/grimoire/pkg/db"
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
