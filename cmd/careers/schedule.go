package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/model"
	"github.com/abbababa/careers/internal/scheduler"
)

var scheduleDays int

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Register the periodic refresh with QStash",
	Long:  "Registers a QStash schedule that POSTs to schedule.refresh_url every N days at 02:00 UTC.",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().IntVar(&scheduleDays, "days", 14, "refresh every N days (1-31)")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cronExpr, err := scheduler.CronForDays(scheduleDays)
	if err != nil {
		return model.UsageError("--days: %v", err)
	}
	logger := setupLogger(debug, cmd)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	client := scheduler.NewQStashClient(cfg.Schedule.QStashURL, cfg.Schedule.QStashKey,
		&http.Client{Timeout: 30 * time.Second}, newRetrier(logger), logger)
	id, err := client.Register(ctx, cfg.Schedule.RefreshURL, cronExpr, scheduleDays)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "schedule %s registered: %s -> %s\n", id, cronExpr, cfg.Schedule.RefreshURL)
	runs, err := scheduler.NextRuns(cronExpr, time.Now().UTC(), 3)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(out, "  next: %s\n", r.Format(time.RFC3339))
	}
	return nil
}
