package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/config"
	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/refresh"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Propagate shared-block edits to the postings that use them",
	Long: "Hashes every block under shared/, re-dates and re-hashes each posting that references a " +
		"changed block, and retranslates those postings when a gateway key is configured.",
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug, cmd)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	res, err := refreshOnce(ctx, cfg, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d blocks changed, %d postings updated, %d translations written\n",
		len(res.Changed), len(res.Affected), res.Translation.Translated)
	return nil
}

// refreshOnce runs one locked refresh pass. The scheduler calls it too.
func refreshOnce(ctx context.Context, cfg *config.Config, logger *slog.Logger) (refresh.Result, error) {
	store := content.NewStore(cfg.ContentRoot)
	unlock, err := lockStore(store)
	if err != nil {
		return refresh.Result{}, err
	}
	defer unlock()

	var runner refresh.TaskRunner
	if r := buildRunner(cfg, store, cfg.Refresh.MinDelay, logger); r != nil {
		runner = r
	}
	return refresh.New(store, runner, cfg.Languages, cfg.Refresh.ValidDays, logger).Run(ctx, today())
}
