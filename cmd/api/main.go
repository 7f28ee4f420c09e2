package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/pcs/internal/config"
	"github.com/MrJamesThe3rd/pcs/internal/export"
	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/goods/store"
	pcsHttp "github.com/MrJamesThe3rd/pcs/internal/http"
	exportHandler "github.com/MrJamesThe3rd/pcs/internal/http/export"
	goodsHandler "github.com/MrJamesThe3rd/pcs/internal/http/goods"
	vasscmHandler "github.com/MrJamesThe3rd/pcs/internal/http/vasscm"
	"github.com/MrJamesThe3rd/pcs/internal/logging"
	"github.com/MrJamesThe3rd/pcs/internal/manifest"
	"github.com/MrJamesThe3rd/pcs/internal/vasscm"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format).With("app", cfg.App.Name)
	slog.SetDefault(logger)

	seed, err := manifest.LoadSeed(cfg.Goods.SeedFile)
	if err != nil {
		slog.Error("failed to load goods seed", "file", cfg.Goods.SeedFile, "error", err)
		os.Exit(1)
	}

	slog.Info("goods loaded", "count", len(seed), "file", cfg.Goods.SeedFile)

	var (
		goodsService  = goods.NewService(store.New(seed))
		exportService = export.NewService(goodsService)
		submitter     = vasscm.NewStub(logger)
	)

	var (
		goodsH  = goodsHandler.NewHandler(goodsService)
		exportH = exportHandler.NewHandler(exportService, goodsService)
		vasscmH = vasscmHandler.NewHandler(submitter, goodsService)
	)

	router := pcsHttp.New(pcsHttp.Options{
		AllowedOrigins: cfg.Origins(),
		Timeout:        cfg.Server.Timeout,
	}, goodsH, exportH, vasscmH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
