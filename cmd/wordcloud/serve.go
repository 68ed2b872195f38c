package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/reddit-wordcloud/internal/form"
	"github.com/jonathan/reddit-wordcloud/internal/observability"
	"github.com/jonathan/reddit-wordcloud/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort   int
	serveAPIURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  `Start an HTTP server with the link form, the JSON submission API and the result pages.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 3000)")
	serveCmd.Flags().StringVar(&serveAPIURL, "api-url", "", "Word extraction backend base URL")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveAPIURL)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintConfig(cfg)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	policy, err := form.ParsePolicy(cfg.DegradedPolicy)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		APIURL:         cfg.APIURL,
		Policy:         policy,
		AllowedOrigins: cfg.AllowedOrigins,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
