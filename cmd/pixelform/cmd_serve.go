package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pixelform/internal/config"
	"pixelform/internal/export"
	"pixelform/internal/llm"
	"pixelform/internal/orchestrator"
	"pixelform/internal/server"
	"pixelform/internal/session"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pixelform session API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := cmd.Context()

	// A missing credential leaves the client nil: sessions stay usable
	// and each run reports the configuration error as a chat message.
	var client llm.Client
	if cfg.Gemini.APIKey != "" {
		gem, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.VisionModel, cfg.Gemini.GenerateModel)
		if err != nil {
			return fmt.Errorf("init gemini client: %w", err)
		}
		defer gem.Close()
		client = gem
	} else {
		log.Printf("GEMINI_API_KEY is not set; generation runs will report a configuration error")
	}

	var exporter *export.Store
	if cfg.Export.Enabled {
		exporter, err = export.New(export.Config{
			Endpoint:  cfg.Export.Endpoint,
			Region:    cfg.Export.Region,
			AccessKey: cfg.Export.AccessKey,
			SecretKey: cfg.Export.SecretKey,
			Bucket:    cfg.Export.Bucket,
			UseSSL:    cfg.Export.UseSSL,
		})
		if err != nil {
			return fmt.Errorf("init export store: %w", err)
		}
		log.Printf("document export enabled: %s/%s", cfg.Export.Endpoint, cfg.Export.Bucket)
	}

	store, err := session.NewStore()
	if err != nil {
		return fmt.Errorf("init session store: %w", err)
	}

	handler := server.NewHandler(store, orchestrator.New(client), exporter)
	srv := server.New(cfg.Addr, server.NewMux(handler))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
