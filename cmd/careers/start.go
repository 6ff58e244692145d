package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/scheduler"
)

var startRunNow bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run refresh on the configured cron schedule",
	Long:  "Runs refresh, then announces changed pages, on schedule.cron until SIGINT/SIGTERM.",
	RunE:  runStart,
}

func init() {
	startCmd.Flags().BoolVar(&startRunNow, "now", false, "run once immediately, then follow the schedule")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug, cmd)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	logger.Info("config loaded",
		"content_root", cfg.ContentRoot,
		"cron", cfg.Schedule.Cron,
		"languages", len(cfg.Languages),
		"translate", cfg.Translate.Enabled(),
	)

	job := func(ctx context.Context) error {
		res, err := refreshOnce(ctx, cfg, logger)
		if err != nil {
			return err
		}
		if len(res.Affected) == 0 {
			return nil
		}
		return announce(ctx, cfg, logger)
	}

	ctx, stop := signalContext()
	defer stop()

	if err := scheduler.NewScheduler(cfg.Schedule.Cron, job, startRunNow, logger).Run(ctx); err != nil {
		return err
	}
	logger.Info("goodbye")
	return nil
}
