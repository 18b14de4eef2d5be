package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/sbksba/weektask/api"
	"github.com/sbksba/weektask/api/handlers"
	"github.com/sbksba/weektask/pkg/clock"
	"github.com/sbksba/weektask/pkg/config"
	"github.com/sbksba/weektask/pkg/repository"
	"github.com/sbksba/weektask/pkg/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := repository.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	clk := clock.RealClock{}
	store := repository.NewTaskRepository(db, clk)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Unfinished tasks migrate to the next day automatically; the API's
	// rollover endpoint stays available for manual runs.
	go scheduler.New(store, clk, cfg.Rollover.CheckInterval).Run(ctx)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(handlers.NewTaskHandler(store))

	log.Printf("listening on http://%s", cfg.Server.Addr())
	if err := router.Run(cfg.Server.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
