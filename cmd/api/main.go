package main

import (
	"context"
	"time"

	"assetbook/internal/api"
	"assetbook/pkg/app"
	"assetbook/pkg/config"
)

const ServiceName = "assetbook-api"

func main() {
	cfg := config.Load(ServiceName)

	cfg.SetStore()
	cfg.SetRedis()
	cfg.SetEvents()

	cfg.Log.Info("Starting asset booking API", "store_backend", cfg.StoreBackend)
	handlers := api.New(cfg.Client, cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := handlers.EnsureIndexes(ctx); err != nil {
		cfg.Log.Warn("Failed to ensure indexes", "error", err)
	}
	cancel()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handlers)
	serverApp.Run()
}
