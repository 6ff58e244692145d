package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/browse"
	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/filter"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse postings and their translations interactively (TUI)",
	Long:  "Shows the category picker, then a split-pane view of postings and the state of each translated copy.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// No logger here: any log output before the alt screen starts corrupts
	// the display.
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	store := content.NewStore(cfg.ContentRoot)

	ctx, stop := signalContext()
	defer stop()

	load := func(context.Context) (*browse.Report, error) {
		return browse.Compute(store, cfg.Languages, filter.TaskFilter{})
	}

	for {
		rep, err := browse.RunLoader(ctx, "Reading "+cfg.ContentRoot, load)
		if err != nil {
			return err
		}
		if len(rep.Rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No postings under", cfg.ContentRoot)
			return nil
		}

		category, ok, err := browse.RunCategoryPicker(rep)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		wantQuit, err := browse.RunBrowser(rep, category, cfg.Site.BaseURL)
		if err != nil {
			return err
		}
		if wantQuit {
			return nil
		}
		// else: back to the picker with a fresh report
	}
}
