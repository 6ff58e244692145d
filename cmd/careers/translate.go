package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/filter"
	"github.com/abbababa/careers/internal/model"
)

var (
	translateFilter filter.TaskFilter
	translateForce  bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Bring translated copies in line with their English source",
	Long: "Translates every selected posting into every selected language. Copies whose content hash " +
		"matches the source are skipped unless --force is given. A failed task is logged and counted; " +
		"the rest of the run continues.",
	RunE: runTranslate,
}

func init() {
	f := translateCmd.Flags()
	f.StringVar(&translateFilter.Lang, "lang", "", "only this target language")
	f.StringVar(&translateFilter.Category, "category", "", "only this category")
	f.StringVar(&translateFilter.Batch, "batch", "", "only postings with this batchDate (YYYY-MM-DD)")
	f.StringVar(&translateFilter.Slug, "slug", "", "only this dated slug, in any category")
	f.BoolVar(&translateForce, "force", false, "retranslate even when the copy is current")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if err := translateFilter.Validate(); err != nil {
		return err
	}
	logger := setupLogger(debug, cmd)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	store := content.NewStore(cfg.ContentRoot)
	runner := buildRunner(cfg, store, cfg.Translate.MinDelay, logger)
	if runner == nil {
		return model.UnavailableError("AI_GATEWAY_API_KEY is not set; check .env or the environment", nil)
	}

	unlock, err := lockStore(store)
	if err != nil {
		return err
	}
	defer unlock()

	tasks, err := runner.Plan(translateFilter, cfg.Languages)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	sum, err := runner.Run(ctx, tasks, translateForce)

	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Tasks", "Translated", "Skipped", "Failed"})
	t.AppendRow(table.Row{sum.Tasks, sum.Translated, sum.Skipped, sum.Failed})
	t.Render()
	return err
}
