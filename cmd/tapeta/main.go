package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tapetashop/tapeta/internal/config"
	"github.com/tapetashop/tapeta/internal/migration"
	"github.com/tapetashop/tapeta/internal/server"
	"github.com/tapetashop/tapeta/pkg/db"
	"github.com/tapetashop/tapeta/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
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
