package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/airtribe-projects/task-manager-api-akki772/internal/app"
	"github.com/airtribe-projects/task-manager-api-akki772/internal/config"
	"github.com/airtribe-projects/task-manager-api-akki772/internal/server"
)

var version = "dev"

func main() {
	var overrides config.Overrides
	root := &cobra.Command{
		Use:          "api",
		Short:        "Task Manager API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(overrides)
		},
	}
	root.Flags().StringVar(&overrides.HTTPAddr, "http", "", "listen address (default :8080)")
	root.Flags().StringVar(&overrides.TasksFile, "tasks-file", "", "seed file path (default tasks.json)")
	root.Flags().StringVar(&overrides.Env, "env", "", "environment name (default dev)")
	root.Flags().StringVar(&overrides.File, "config", "", "config file path (default taskman.toml)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(overrides config.Overrides) error {
	cfg := config.Load(overrides)
	a := app.New(cfg)
	srv := server.New(cfg.HTTPAddr, a.Router, cfg.ReadTimeout, cfg.WriteTimeout)
	log.Printf("listening on %s (env %s)", cfg.HTTPAddr, cfg.Env)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)
	select {
	case sig := <-stop:
		log.Printf("signal %s received, shutting down", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
