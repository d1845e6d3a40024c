package main

import (
	"github.com/DevalGit/AccountEntry/internal/account"
	"github.com/DevalGit/AccountEntry/internal/audit"
	"github.com/DevalGit/AccountEntry/internal/clock"
	"github.com/DevalGit/AccountEntry/internal/config"
	"github.com/DevalGit/AccountEntry/internal/observability"
	"github.com/DevalGit/AccountEntry/internal/pending"
	"github.com/DevalGit/AccountEntry/internal/seed"
	"github.com/DevalGit/AccountEntry/internal/server"
	"github.com/DevalGit/AccountEntry/internal/session"
	"github.com/DevalGit/AccountEntry/internal/totals"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		clock.Module,
		pending.Module,

		account.Module,
		session.Module,
		totals.Module,
		audit.Module,
		seed.Module,

		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
