package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/lifecycle"
	"github.com/abbababa/careers/internal/model"
)

var (
	fillBatch      string
	fillReplacedBy string
	fillDryRun     bool
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Mark a batch as filled and link it to a newer batch",
	Long: "Sets status=filled on every posting of --batch, points each at up to fill.max_replacements " +
		"active postings of the same category from --replaced-by, and copies both fields onto every " +
		"existing translated copy.",
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVar(&fillBatch, "batch", "", "batch date to mark filled (YYYY-MM-DD)")
	fillCmd.Flags().StringVar(&fillReplacedBy, "replaced-by", "", "batch date the replacements come from (YYYY-MM-DD)")
	fillCmd.Flags().BoolVar(&fillDryRun, "dry-run", false, "report what would change without writing")
	rootCmd.AddCommand(fillCmd)
}

func runFill(cmd *cobra.Command, args []string) error {
	if fillBatch == "" || fillReplacedBy == "" {
		return model.UsageError("fill needs --batch and --replaced-by")
	}
	if err := validateDate("batch", fillBatch); err != nil {
		return err
	}
	if err := validateDate("replaced-by", fillReplacedBy); err != nil {
		return err
	}
	logger := setupLogger(debug, cmd)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	store := content.NewStore(cfg.ContentRoot)
	if !fillDryRun {
		unlock, err := lockStore(store)
		if err != nil {
			return err
		}
		defer unlock()
	}

	items, err := lifecycle.NewFiller(store, model.TargetLanguages, cfg.Fill.MaxReplacements, logger).
		Fill(fillBatch, fillReplacedBy, fillDryRun)
	if err != nil {
		return err
	}

	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Category", "Posting", "Replaced by", "Copies"})
	for _, it := range items {
		slugs := make([]string, len(it.ReplacedBy))
		for i, r := range it.ReplacedBy {
			slugs[i] = r.Slug
		}
		t.AppendRow(table.Row{it.Category, it.Slug, strings.Join(slugs, "\n"), strings.Join(it.Translations, " ")})
	}
	t.Render()

	verb := "filled"
	if fillDryRun {
		verb = "would fill"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d postings of batch %s\n", verb, len(items), fillBatch)
	return nil
}
