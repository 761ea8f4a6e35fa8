package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	httpadapter "cv-composer/internal/adapter/http"
	"cv-composer/internal/adapter/repository"
	"cv-composer/internal/config"
	"cv-composer/internal/infrastructure/migration"
	"cv-composer/internal/usecase"
	infra "cv-composer/pkg/infrastructure"
	"cv-composer/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewPool(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal("database not available", "error", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool, log); err != nil {
		log.Fatal("migrations failed", "error", err)
	}

	store := repository.NewProfileRepo(pool)
	assets := infra.NewAssetResolver(cfg.Assets.StaticRoot, cfg.Assets.MediaRoot, cfg.Assets.MediaBaseURL)
	renderer := infra.NewChromedpRenderer(cfg.Renderer.ChromePath, cfg.Renderer.Timeout)
	pdf := infra.NewPDFCPUMerger()

	profiles := usecase.NewStoreProfileProvider(store)
	resolver := usecase.NewResolver(store)
	body, err := usecase.NewBodyRenderer(renderer, assets)
	if err != nil {
		log.Fatal("templates", "error", err)
	}
	merger := usecase.NewAttachmentMerger(infra.NewHTTPFetcher(cfg.Fetch.Timeout), assets, pdf, body, log,
		cfg.Fetch.Concurrency, cfg.Fetch.Timeout)
	composer := usecase.NewComposer(profiles, resolver, body, merger, pdf, log)

	pages, err := usecase.NewPages(profiles, resolver, store, infra.PublicAssets{AssetResolver: assets}, log)
	if err != nil {
		log.Fatal("templates", "error", err)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Static("/static", cfg.Assets.StaticRoot)
	app.Static("/media", cfg.Assets.MediaRoot)
	httpadapter.NewHandler(pages, composer, log).Register(app)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Info("listening", "port", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatal("server failed", "error", err)
	}
}
