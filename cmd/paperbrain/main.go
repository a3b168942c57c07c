package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/dhrupad777/paperbrain/internal/analysis"
	"github.com/dhrupad777/paperbrain/internal/clock"
	"github.com/dhrupad777/paperbrain/internal/config"
	"github.com/dhrupad777/paperbrain/internal/draft"
	"github.com/dhrupad777/paperbrain/internal/invoice"
	"github.com/dhrupad777/paperbrain/internal/observability/metrics"
	"github.com/dhrupad777/paperbrain/internal/providers/pdf"
	"github.com/dhrupad777/paperbrain/internal/server"
	"github.com/dhrupad777/paperbrain/internal/session"
	"github.com/dhrupad777/paperbrain/pkg/db"
	"github.com/dhrupad777/paperbrain/pkg/log"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		db.Module,
		clock.Module,
		metrics.Module,
		fx.Provide(RegisterSnowflake),

		// Functional domains
		invoice.Module,
		draft.Module,
		session.Module,
		pdf.Module,
		analysis.Module,

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
