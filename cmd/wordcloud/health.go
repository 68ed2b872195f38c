package main

import (
	"fmt"

	"github.com/jonathan/reddit-wordcloud/internal/submission"
	"github.com/spf13/cobra"
)

var healthAPIURL string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the word extraction backend",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	healthCmd.Flags().StringVar(&healthAPIURL, "api-url", "", "Word extraction backend base URL")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(healthAPIURL)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client := submission.New(cfg.APIURL, submission.WithLogger(logger))
	if err := client.Health(cmd.Context()); err != nil {
		return fmt.Errorf("backend unhealthy: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "backend healthy: %s\n", client.BaseURL())
	return nil
}
