package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/model"
	"github.com/abbababa/careers/internal/translate"
)

// TaskRunner re-translates postings. It is nil when no gateway credential
// is configured.
type TaskRunner interface {
	Run(ctx context.Context, tasks []translate.Task, force bool) (translate.Summary, error)
}

// Result summarizes one refresh run.
type Result struct {
	Changed     []Change
	Affected    []string // category/slug
	Translation translate.Summary
}

// Refresher propagates shared-block edits to the postings that use them.
type Refresher struct {
	store     *content.Store
	runner    TaskRunner
	languages []string
	validDays int
	logger    *slog.Logger
}

// New creates a refresher. runner may be nil, in which case affected
// postings keep their stale translations until the next translate run.
func New(store *content.Store, runner TaskRunner, languages []string, validDays int, logger *slog.Logger) *Refresher {
	return &Refresher{
		store:     store,
		runner:    runner,
		languages: languages,
		validDays: validDays,
		logger:    logger,
	}
}

// Run detects changed blocks, re-dates and re-hashes every posting that
// references one, re-translates them when possible, and saves the cache.
func (r *Refresher) Run(ctx context.Context, today string) (Result, error) {
	var res Result

	validThrough, err := model.AddDays(today, r.validDays)
	if err != nil {
		return res, model.UsageError("invalid refresh date %q", today)
	}

	cache, err := LoadBlockCache(r.store.BlockCachePath())
	if err != nil {
		return res, err
	}
	blocks, err := ScanBlocks(r.store.SharedDir())
	if err != nil {
		return res, err
	}

	res.Changed = cache.Apply(blocks)
	if len(res.Changed) == 0 {
		r.logger.Info("no shared block changes detected")
		return res, cache.Save()
	}
	for _, c := range res.Changed {
		r.logger.Info("shared block changed", "block", c.ID, "deleted", c.Deleted)
	}

	postings, err := r.store.LoadAll()
	if err != nil {
		return res, err
	}

	var tasks []translate.Task
	for _, p := range postings {
		refs := p.BlockRefs()
		if !affected(refs, res.Changed) {
			continue
		}

		p.LastUpdated = today
		p.ValidThrough = validThrough
		p.ContentHash = PostingHash(p, blocks)
		if err := r.store.SaveJob(p); err != nil {
			return res, fmt.Errorf("save %s/%s: %w", p.Category, p.Slug(), err)
		}
		res.Affected = append(res.Affected, p.Category+"/"+p.Slug())
		r.logger.Info("updated posting", "category", p.Category, "slug", p.Slug(), "content_hash", p.ContentHash)

		if r.runner == nil {
			r.logger.Warn("skip translation, no gateway key", "category", p.Category, "slug", p.Slug())
			continue
		}
		for _, lang := range r.languages {
			tasks = append(tasks, translate.Task{Lang: lang, Category: p.Category, Slug: p.Slug()})
		}
	}

	if len(tasks) > 0 {
		sum, err := r.runner.Run(ctx, tasks, true)
		res.Translation = sum
		if err != nil {
			return res, err
		}
	}

	if err := cache.Save(); err != nil {
		return res, err
	}
	r.logger.Info("refresh complete", "changed_blocks", len(res.Changed), "affected", len(res.Affected))
	return res, nil
}

func affected(refs []string, changes []Change) bool {
	for _, c := range changes {
		if References(refs, c.ID) {
			return true
		}
	}
	return false
}

// PostingHash is the content hash of a posting after a block refresh: its
// description and responsibilities followed by the sorted id=hash pairs of
// every existing block it references. Re-running with no block edits
// reproduces the same value.
func PostingHash(p *model.JobPosting, blocks []Block) string {
	refs := p.BlockRefs()
	var pairs []string
	for _, b := range blocks {
		if References(refs, b.ID) {
			pairs = append(pairs, b.ID+"="+b.Hash)
		}
	}
	slices.Sort(pairs)
	return model.Hash16(p.Description + strings.Join(p.Responsibilities, "") + strings.Join(pairs, ""))
}
