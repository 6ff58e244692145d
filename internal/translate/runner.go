package translate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/filter"
	"github.com/abbababa/careers/internal/model"
)

// PostingTranslator translates one posting into one language.
type PostingTranslator interface {
	Translate(ctx context.Context, src *model.JobPosting, lang string) (*model.JobPosting, error)
}

// Task is one (language, category, slug) unit of work. Tasks never share a
// destination file.
type Task struct {
	Lang     string
	Category string
	Slug     string
}

// Summary counts task outcomes for a run.
type Summary struct {
	Tasks      int
	Translated int
	Skipped    int
	Failed     int
}

// Runner fans translation tasks out to a fixed pool of workers.
type Runner struct {
	store       *content.Store
	translator  PostingTranslator
	concurrency int
	logger      *slog.Logger
}

// NewRunner creates a runner with the given worker count.
func NewRunner(store *content.Store, translator PostingTranslator, concurrency int, logger *slog.Logger) *Runner {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Runner{
		store:       store,
		translator:  translator,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Plan builds the task list for langs × categories × postings, narrowed by f.
// Tasks are ordered by language, then category, then file name.
func (r *Runner) Plan(f filter.TaskFilter, langs []string) ([]Task, error) {
	cats, err := r.store.Categories()
	if err != nil {
		return nil, err
	}

	type entry struct{ category, slug string }
	var postings []entry
	for _, cat := range cats {
		if !f.MatchCategory(cat) {
			continue
		}
		slugs, err := r.store.Slugs(cat)
		if err != nil {
			return nil, err
		}
		for _, slug := range slugs {
			if !f.MatchSlug(slug) {
				continue
			}
			if f.Batch != "" {
				p, err := r.store.LoadJob(cat, slug)
				if err != nil {
					return nil, err
				}
				if !f.Match(p) {
					continue
				}
			}
			postings = append(postings, entry{cat, slug})
		}
	}

	var tasks []Task
	for _, lang := range langs {
		if !f.MatchLang(lang) {
			continue
		}
		for _, e := range postings {
			tasks = append(tasks, Task{Lang: lang, Category: e.category, Slug: e.slug})
		}
	}
	return tasks, nil
}

// Run processes tasks with the worker pool. A failing task is logged and
// counted; it never stops the others. Run returns early only when ctx is
// cancelled, in which case queued tasks are dropped.
func (r *Runner) Run(ctx context.Context, tasks []Task, force bool) (Summary, error) {
	var translated, skipped, failed atomic.Int64

	queue := make(chan Task, len(tasks))
	for _, t := range tasks {
		queue <- t
	}
	close(queue)

	workers := min(r.concurrency, max(len(tasks), 1))
	r.logger.Info("translation run started", "tasks", len(tasks), "concurrency", workers, "force", force)

	g, gctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for task := range queue {
				if err := gctx.Err(); err != nil {
					return err
				}
				done, err := r.runTask(gctx, task, force)
				switch {
				case err != nil:
					failed.Add(1)
					r.logger.Error("translation failed",
						"lang", task.Lang,
						"category", task.Category,
						"slug", task.Slug,
						"error", err,
					)
				case done:
					translated.Add(1)
				default:
					skipped.Add(1)
				}
			}
			return nil
		})
	}
	err := g.Wait()

	sum := Summary{
		Tasks:      len(tasks),
		Translated: int(translated.Load()),
		Skipped:    int(skipped.Load()),
		Failed:     int(failed.Load()),
	}
	r.logger.Info("translation run finished",
		"tasks", sum.Tasks,
		"translated", sum.Translated,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
	)
	return sum, err
}

// runTask translates one task unless its copy is current. It reports whether
// a file was written.
func (r *Runner) runTask(ctx context.Context, task Task, force bool) (bool, error) {
	src, err := r.store.LoadJob(task.Category, task.Slug)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if !force && r.isCurrent(task, src) {
		r.logger.Debug("skip unchanged", "lang", task.Lang, "category", task.Category, "slug", task.Slug)
		return false, nil
	}

	r.logger.Debug("translating", "lang", task.Lang, "category", task.Category, "slug", task.Slug)
	out, err := r.translator.Translate(ctx, src, task.Lang)
	if err != nil {
		return false, err
	}
	if err := r.store.SaveTranslation(task.Lang, out); err != nil {
		return false, fmt.Errorf("save translation: %w", err)
	}
	return true, nil
}

// isCurrent reports whether the translated copy exists and carries the
// source's content hash. An unreadable copy counts as stale.
func (r *Runner) isCurrent(task Task, src *model.JobPosting) bool {
	dest, err := r.store.LoadTranslation(task.Lang, task.Category, task.Slug)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("unreadable translation, retranslating",
				"lang", task.Lang, "category", task.Category, "slug", task.Slug, "error", err)
		}
		return false
	}
	return dest.ContentHash == src.ContentHash
}
