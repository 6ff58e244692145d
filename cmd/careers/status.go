package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/browse"
	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/filter"
	"github.com/abbababa/careers/internal/model"
)

var statusFilter filter.TaskFilter

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show translation freshness per language",
	Long:  "Compares every translated copy's content hash with its English source and tallies current, stale and missing copies.",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusFilter.Batch, "batch", "", "only postings with this batchDate (YYYY-MM-DD)")
	statusCmd.Flags().StringVar(&statusFilter.Category, "category", "", "only this category")
	statusCmd.Flags().StringVar(&statusFilter.Lang, "lang", "", "only this target language")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := statusFilter.Validate(); err != nil {
		return err
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	rep, err := browse.Compute(content.NewStore(cfg.ContentRoot), cfg.Languages, statusFilter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	t := newTable(out)
	t.AppendHeader(table.Row{"Lang", "Language", "Current", "Stale", "Missing"})
	for i, c := range rep.Counts() {
		lang := rep.Languages[i]
		t.AppendRow(table.Row{lang, model.LanguageName(lang), c.Current, c.Stale, c.Missing})
	}
	t.Render()
	fmt.Fprintf(out, "%d postings (%d filled) in %d categories\n", len(rep.Rows), rep.Filled(), len(rep.Categories()))
	return nil
}
