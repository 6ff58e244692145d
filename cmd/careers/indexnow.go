package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/config"
	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/indexing"
	"github.com/abbababa/careers/internal/model"
	"github.com/abbababa/careers/internal/store"
)

var (
	indexNowDryRun bool
	indexNowAll    bool
)

var indexNowCmd = &cobra.Command{
	Use:   "indexnow",
	Short: "Announce new and changed posting pages to IndexNow",
	Long: "Lists every published page, skips revisions already recorded in the submission ledger, " +
		"submits the rest and records them.",
	RunE: runIndexNow,
}

func init() {
	indexNowCmd.Flags().BoolVar(&indexNowDryRun, "dry-run", false, "list pending pages without submitting")
	indexNowCmd.Flags().BoolVar(&indexNowAll, "all", false, "ignore the ledger and announce every page")
	rootCmd.AddCommand(indexNowCmd)
}

func runIndexNow(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug, cmd)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	var pages []model.Page
	err = withSubmitter(cfg, indexNowAll, logger, func(s *indexing.Submitter) error {
		var err error
		if indexNowDryRun {
			pages, err = s.Pending()
		} else {
			pages, err = s.Submit(ctx)
		}
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	t := newTable(out)
	t.AppendHeader(table.Row{"Lang", "URL"})
	for _, p := range pages {
		t.AppendRow(table.Row{p.Lang, p.URL})
	}
	t.Render()
	verb := "submitted"
	if indexNowDryRun {
		verb = "pending"
	}
	fmt.Fprintf(out, "%d pages %s\n", len(pages), verb)
	return nil
}

// withSubmitter opens the submission ledger and runs fn with a submitter
// over the content tree. ignoreLedger swaps in a ledger that remembers
// nothing.
func withSubmitter(cfg *config.Config, ignoreLedger bool, logger *slog.Logger, fn func(*indexing.Submitter) error) error {
	var ledger model.SubmissionStore
	if ignoreLedger {
		ledger = store.NewNopStore()
	} else {
		sqlStore, err := store.NewSQLiteStore(cfg.IndexNow.LedgerPath)
		if err != nil {
			return fmt.Errorf("open submission ledger: %w", err)
		}
		defer sqlStore.Close()
		ledger = sqlStore
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	s := indexing.NewSubmitter(
		content.NewStore(cfg.ContentRoot),
		cfg.Site.BaseURL,
		cfg.Languages,
		ledger,
		setupNotifier(cfg, httpClient, logger),
		cfg.IndexNow.Retention,
		logger,
	)
	return fn(s)
}

// announce submits pending pages; the scheduler calls it after each refresh.
func announce(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	return withSubmitter(cfg, false, logger, func(s *indexing.Submitter) error {
		pages, err := s.Submit(ctx)
		if err != nil {
			return err
		}
		logger.Info("pages announced", "pages", len(pages))
		return nil
	})
}
