package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-backend/src/config"
	datasource "stock-backend/src/data_source"
	"stock-backend/src/data_source/finnhub"
	"stock-backend/src/grpc_control"
	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/network"
	"stock-backend/src/scheduler"
	"stock-backend/src/server"
	"stock-backend/src/utils"
)

// -----------------------------------------------------------------------------

func main() {
	defaultPath := "config/default.yaml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		defaultPath = p
	}
	configPath := flag.String("config", defaultPath, "path to config file")
	flag.Parse()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewLogger(cfg.LogLevel, cfg.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Storage
	archive, err := setupArchive(cfg, appLogger)
	if err != nil {
		appLogger.Critical("Failed to init quote archive: %v", err)
	}
	defer archive.Close()

	// 2. Quote pipeline components
	netMgr, err := network.NewAsyncNetworkManager(cfg.MConfig, appLogger)
	if err != nil {
		appLogger.Critical("Failed to init network manager: %v", err)
	}
	source := finnhub.NewFinnhubSource(cfg.MConfig, netMgr, appLogger)

	gate, err := utils.NewMarketHours(cfg.MarketHours, cfg.DataSource.Symbols)
	if err != nil {
		appLogger.Critical("Invalid market hours: %v", err)
	}
	cache := utils.NewQuoteCache()

	// 3. Sentiment components
	stack, err := setupSentiment(cfg, appLogger)
	if err != nil {
		appLogger.Critical("Failed to init sentiment: %v", err)
	}
	defer stack.Close()

	control := grpc_control.NewControlServer(cfg.MConfig, appLogger)

	var indexLoader interfaces.IIndexLoader
	if stack.Loader != nil {
		stack.Loader.OnLoaded = control.SetIndexLoaded
		indexLoader = stack.Loader

		if cfg.NeedsLocalIndex() {
			if err := stack.Loader.Load(ctx); err != nil {
				appLogger.Error("Initial index load failed, chat will report errors until a reload succeeds: %v", err)
			}
		}
		if err := stack.Loader.LoadGraph(ctx); err != nil {
			appLogger.Warning("Initial graph download failed: %v", err)
		}
	}

	// 4. API server doubles as the websocket data exchanger
	api := server.NewAPIServer(cfg.MConfig, cache, stack.Chat, indexLoader, appLogger)
	poller := datasource.NewPoller(cfg.MConfig, source, gate, cache, archive, api, appLogger)

	if *cfg.DataSource.PollOnStart {
		appLogger.Info("Fetching initial quotes...")
		poller.Poll(ctx)
	}

	sched, err := scheduler.NewScheduler(ctx, cfg.MConfig, poller, indexLoader, appLogger)
	if err != nil {
		appLogger.Critical("Failed to init scheduler: %v", err)
	}
	if err := sched.RegisterAll(); err != nil {
		appLogger.Critical("Failed to register jobs: %v", err)
	}

	// 5. Serve
	startServers(api, control, sched, appLogger)
	appLogger.Info("Initialization complete, polling %d symbols every %s", len(cfg.DataSource.Symbols), cfg.PollInterval())

	<-ctx.Done()
	appLogger.Info("Shutting down...")

	wait := time.Duration(cfg.Schedule.ShutdownWaitSecs) * time.Second
	sched.Stop(wait)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	if err := api.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP shutdown: %v", err)
	}
	control.Stop(shutdownCtx)
}
