package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/lifecycle"
	"github.com/abbababa/careers/internal/model"
)

var (
	expireBatch   string
	expireDryRun  bool
	expireConfirm string
)

var expireCmd = &cobra.Command{
	Use:   "expire",
	Short: "Delete a batch together with its translations",
	Long: "Deletes the English file and every translated copy of each posting in --batch. " +
		"Run with --dry-run first; it prints the file list and the token --confirm must repeat.",
	RunE: runExpire,
}

func init() {
	expireCmd.Flags().StringVar(&expireBatch, "batch", "", "batch date to delete (YYYY-MM-DD)")
	expireCmd.Flags().BoolVar(&expireDryRun, "dry-run", false, "list the files without deleting")
	expireCmd.Flags().StringVar(&expireConfirm, "confirm", "", "token printed by --dry-run")
	rootCmd.AddCommand(expireCmd)
}

func runExpire(cmd *cobra.Command, args []string) error {
	if expireBatch == "" {
		return model.UsageError("expire needs --batch")
	}
	if err := validateDate("batch", expireBatch); err != nil {
		return err
	}
	logger := setupLogger(debug, cmd)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	store := content.NewStore(cfg.ContentRoot)
	expirer := lifecycle.NewExpirer(store, model.TargetLanguages, logger)
	out := cmd.OutOrStdout()

	if expireDryRun {
		plan, err := expirer.Plan(expireBatch)
		if err != nil {
			return err
		}
		t := newTable(out)
		t.AppendHeader(table.Row{"#", "File"})
		for i, f := range plan.Files {
			t.AppendRow(table.Row{i + 1, f})
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d postings, %d files", plan.Postings, len(plan.Files))})
		t.Render()
		if len(plan.Files) > 0 {
			fmt.Fprintf(out, "to delete, run: careers expire --batch=%s --confirm=%s\n", plan.Batch, plan.Token())
		}
		return nil
	}

	unlock, err := lockStore(store)
	if err != nil {
		return err
	}
	defer unlock()

	plan, err := expirer.Expire(expireBatch, expireConfirm)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %d files for %d postings of batch %s\n", len(plan.Files), plan.Postings, plan.Batch)
	return nil
}
