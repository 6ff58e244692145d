package urlcheck

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ignoredDirs are never scanned.
var ignoredDirs = []string{"node_modules", ".next", "dist", ".git", "vendor"}

// knownReasons explains what to link instead of a banned host.
var knownReasons = map[string]string{
	"api.abbababa.com":    "use abbababa.com/api/v1",
	"agents.abbababa.com": "agent pages live on the /agents site",
	"www.abbababa.com":    "use abbababa.com (no www)",
}

// Reason returns the fix hint for a banned host.
func Reason(host string) string {
	if r, ok := knownReasons[host]; ok {
		return r
	}
	return "banned host"
}

// Finding is one banned URL found in a source file.
type Finding struct {
	File  string // relative to the scan root
	Line  int
	Match string
	Host  string
}

// Scanner looks for links to hosts that must never appear in source.
type Scanner struct {
	root       string
	dirs       []string
	extensions []string
	hosts      []string
	patterns   []*regexp.Regexp
}

// NewScanner builds a scanner for dirs under root. Each banned host matches
// as http:// or https:// followed by the host name.
func NewScanner(root string, dirs, extensions, bannedHosts []string) *Scanner {
	s := &Scanner{root: root, dirs: dirs, extensions: extensions, hosts: bannedHosts}
	for _, h := range bannedHosts {
		s.patterns = append(s.patterns, regexp.MustCompile(`https?://`+regexp.QuoteMeta(h)+`\b`))
	}
	return s
}

// Scan walks the configured directories and returns every match, ordered by
// file and line. Missing directories are skipped.
func (s *Scanner) Scan() ([]Finding, error) {
	var findings []Finding
	for _, dir := range s.dirs {
		base := filepath.Join(s.root, dir)
		if _, err := os.Stat(base); err != nil {
			continue
		}
		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if slices.Contains(ignoredDirs, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !s.wants(path) {
				return nil
			}
			found, err := s.scanFile(path)
			if err != nil {
				return err
			}
			findings = append(findings, found...)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
	}
	slices.SortStableFunc(findings, func(a, b Finding) int {
		if c := strings.Compare(a.File, b.File); c != 0 {
			return c
		}
		return a.Line - b.Line
	})
	return findings, nil
}

func (s *Scanner) wants(path string) bool {
	ext := filepath.Ext(path)
	return slices.Contains(s.extensions, ext)
}

func (s *Scanner) scanFile(path string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	var findings []Finding
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		for i, re := range s.patterns {
			for _, m := range re.FindAllString(text, -1) {
				findings = append(findings, Finding{File: rel, Line: line, Match: m, Host: s.hosts[i]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	return findings, nil
}

// LiveResult is the outcome of one HEAD request.
type LiveResult struct {
	URL    string
	Status int // zero when the request failed
	Err    string
}

// OK reports whether the endpoint answered 200.
func (r LiveResult) OK() bool { return r.Status == http.StatusOK }

// Checker issues HEAD requests against published endpoints.
type Checker struct {
	httpClient  *http.Client
	timeout     time.Duration
	concurrency int
}

func NewChecker(httpClient *http.Client, timeout time.Duration) *Checker {
	return &Checker{httpClient: httpClient, timeout: timeout, concurrency: 4}
}

// Check requests base+path for every path. Results keep the order of paths.
func (c *Checker) Check(ctx context.Context, base string, paths []string) []LiveResult {
	base = strings.TrimRight(base, "/")
	results := make([]LiveResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, p := range paths {
		g.Go(func() error {
			results[i] = c.head(gctx, base+p)
			return nil
		})
	}
	g.Wait()
	return results
}

func (c *Checker) head(ctx context.Context, url string) LiveResult {
	res := LiveResult{URL: url}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	resp.Body.Close()

	res.Status = resp.StatusCode
	if !res.OK() {
		res.Err = fmt.Sprintf("expected 200, got %d", resp.StatusCode)
	}
	return res
}
