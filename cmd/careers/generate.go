package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/generate"
	"github.com/abbababa/careers/internal/model"
)

var (
	generateDate string
	generateDays int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a dated batch of English postings",
	Long:  "Materializes one posting per catalog template for the batch date. Existing postings are left untouched.",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateDate, "date", "", "batch date YYYY-MM-DD (default: today, UTC)")
	generateCmd.Flags().IntVar(&generateDays, "days", 0, "days until validThrough (default: generate.valid_days)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := validateDate("date", generateDate); err != nil {
		return err
	}
	if generateDays < 0 {
		return model.UsageError("--days must be positive, got %d", generateDays)
	}
	logger := setupLogger(debug, cmd)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	date := generateDate
	if date == "" {
		date = today()
	}
	days := generateDays
	if days == 0 {
		days = cfg.Generate.ValidDays
	}

	store := content.NewStore(cfg.ContentRoot)
	unlock, err := lockStore(store)
	if err != nil {
		return err
	}
	defer unlock()

	res, err := generate.New(store, generate.Catalog, logger).Run(date, days)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "batch %s: %d written, %d already present\n", date, len(res.Written), len(res.Skipped))
	return nil
}
