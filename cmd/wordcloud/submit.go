package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/reddit-wordcloud/internal/form"
	"github.com/jonathan/reddit-wordcloud/internal/observability"
	"github.com/jonathan/reddit-wordcloud/internal/submission"
	"github.com/spf13/cobra"
)

var (
	submitAPIURL string
	submitPolicy string
)

var submitCmd = &cobra.Command{
	Use:   "submit <link>",
	Short: "Submit a thread link to the backend",
	Long: `Validate a reddit thread link, send it to the word extraction backend once,
and print the result path the browser would navigate to.`,
	Example: `  wordcloud submit https://www.reddit.com/r/golang/comments/abc123/some_thread/
  wordcloud submit --policy error --api-url http://localhost:8080 https://redd.it/abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitAPIURL, "api-url", "", "Word extraction backend base URL")
	submitCmd.Flags().StringVar(&submitPolicy, "policy", "", "What to do when extraction degrades: navigate or error")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(submitAPIURL)
	if err != nil {
		return err
	}
	if submitPolicy != "" {
		cfg.DegradedPolicy = submitPolicy
	}
	policy, err := form.ParsePolicy(cfg.DegradedPolicy)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client := submission.New(cfg.APIURL, submission.WithLogger(logger.Named("submission")))
	f := form.New(client, form.WithPolicy(policy), form.WithLogger(logger.Named("form")))

	out := cmd.OutOrStdout()
	nav := form.NavigatorFunc(func(path string) {
		fmt.Fprintf(out, "navigate: %s\n", path)
	})

	sub := f.Submit(cmd.Context(), args[0], nav)

	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintSubmission(sub)
	}

	if sub.FieldError != "" {
		return errors.New(sub.FieldError)
	}
	if sub.Error != "" {
		return fmt.Errorf("%s: %w", sub.Error, sub.Outcome.Err())
	}
	if sub.Outcome.IsDegraded() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: extraction degraded: %v\n", sub.Outcome.Err())
	}
	return nil
}
