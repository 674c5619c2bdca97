package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lucas-2000/obreron-admin/internal/config"
	"github.com/Lucas-2000/obreron-admin/internal/handler"
	"github.com/Lucas-2000/obreron-admin/internal/query"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
	"github.com/Lucas-2000/obreron-admin/internal/session"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup session and upstream client
	sessions := session.NewFileStore(cfg.TokenFile)
	apiClient := obreron.NewClient(obreron.Config{APIURL: cfg.APIURL}, sessions)
	store := query.NewStore(apiClient)

	guard := session.NewGuard(sessions, func(notice string) {
		fmt.Println(notice)
	})
	guard.Tick()

	guardCtx, stopGuard := context.WithCancel(context.Background())
	defer stopGuard()
	go guard.Run(guardCtx)

	// 3. Setup handler
	h := handler.NewHandler(apiClient, store, sessions, guard, handler.Config{
		AllowedOrigin: cfg.AllowedOrigin,
	})

	// 4. Setup server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run server with graceful shutdown
	go func() {
		fmt.Printf("Starting server on port %s\n", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down server...")

	stopGuard()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
