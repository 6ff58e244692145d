package main

import (
	"fmt"
	"net/http"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/model"
	"github.com/abbababa/careers/internal/urlcheck"
)

var (
	checkLive bool
	checkBase string
	checkRoot string
)

var checkURLsCmd = &cobra.Command{
	Use:   "check-urls",
	Short: "Scan sources for banned hosts and optionally probe live endpoints",
	Long: "Scans the configured source directories for links to banned hosts. With --live it also " +
		"sends a HEAD request to each configured path and expects 200. Exits 1 on any finding.",
	RunE: runCheckURLs,
}

func init() {
	checkURLsCmd.Flags().BoolVar(&checkLive, "live", false, "also HEAD the live endpoints")
	checkURLsCmd.Flags().StringVar(&checkBase, "base", "", "site to probe (default: site.base_url)")
	checkURLsCmd.Flags().StringVar(&checkRoot, "root", ".", "repository root to scan")
	rootCmd.AddCommand(checkURLsCmd)
}

func runCheckURLs(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug, cmd)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	cc := cfg.CheckURLs
	out := cmd.OutOrStdout()
	problems := 0

	findings, err := urlcheck.NewScanner(checkRoot, cc.ScanDirs, cc.Extensions, cc.BannedPatterns).Scan()
	if err != nil {
		return err
	}
	if len(findings) > 0 {
		t := newTable(out)
		t.AppendHeader(table.Row{"File", "Line", "URL", "Fix"})
		for _, f := range findings {
			t.AppendRow(table.Row{f.File, f.Line, f.Match, urlcheck.Reason(f.Host)})
		}
		t.Render()
		problems += len(findings)
	}
	logger.Info("static scan finished", "dirs", cc.ScanDirs, "findings", len(findings))

	if checkLive {
		base := checkBase
		if base == "" {
			base = cfg.Site.BaseURL
		}
		ctx, stop := signalContext()
		defer stop()

		// The default client follows redirects; the final response must be 200.
		results := urlcheck.NewChecker(&http.Client{}, cc.Timeout).Check(ctx, base, cc.LivePaths)
		t := newTable(out)
		t.AppendHeader(table.Row{"URL", "Status", "Result"})
		for _, r := range results {
			result := "ok"
			if !r.OK() {
				result = r.Err
				problems++
			}
			t.AppendRow(table.Row{r.URL, r.Status, result})
		}
		t.Render()
	}

	if problems > 0 {
		return model.InvalidError(fmt.Sprintf("%d URL problems found", problems), nil)
	}
	fmt.Fprintln(out, "all URLs clean")
	return nil
}
