package main

import (
	"log/slog"
	"os"

	mcpadapter "github.com/kirillkom/fretboard-chords/internal/adapters/mcp"
	"github.com/kirillkom/fretboard-chords/internal/bootstrap"
	"github.com/kirillkom/fretboard-chords/internal/config"
	"github.com/kirillkom/fretboard-chords/internal/observability/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_load_failed", "error", err)
		os.Exit(1)
	}
	// stdout carries the MCP protocol; logs go to stderr.
	slog.SetDefault(logging.New(os.Stderr, cfg.ServiceName+"-mcp", cfg.LogLevel))

	app, err := bootstrap.NewCore(cfg)
	if err != nil {
		slog.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	tools := mcpadapter.NewTools(app.RecognizeUC, app.CatalogUC, app.NoteUC)
	slog.Info("mcp_server_starting", "catalog_size", app.Catalog.Size())
	if err := tools.ServeStdio(); err != nil {
		slog.Error("mcp_server_failed", "error", err)
		os.Exit(1)
	}
}
