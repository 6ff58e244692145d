package lifecycle

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/model"
)

// FillItem is one source posting marked filled, with the translated copies
// that received the same update.
type FillItem struct {
	Category     string
	Slug         string
	ReplacedBy   []model.Replacement
	Translations []string // languages whose copy was synced
}

// Filler marks batches as filled and links them to their successors.
type Filler struct {
	store           *content.Store
	languages       []string
	maxReplacements int
	logger          *slog.Logger
}

// NewFiller creates a filler. maxReplacements caps replacedBy per posting.
func NewFiller(store *content.Store, languages []string, maxReplacements int, logger *slog.Logger) *Filler {
	return &Filler{
		store:           store,
		languages:       languages,
		maxReplacements: maxReplacements,
		logger:          logger,
	}
}

// SelectReplacements picks up to limit postings of category from the
// replacement batch, in file-name order, skipping filled postings and the
// excluded slug.
func (f *Filler) SelectReplacements(category, batch, exclude string, limit int) ([]model.Replacement, error) {
	postings, err := f.store.LoadCategory(category)
	if err != nil {
		return nil, err
	}
	selected := []model.Replacement{}
	for _, p := range postings {
		if len(selected) >= limit {
			break
		}
		if p.BatchDate != batch || p.IsFilled() || p.Slug() == exclude {
			continue
		}
		selected = append(selected, model.Replacement{Category: category, Slug: p.Slug(), Title: p.Title})
	}
	return selected, nil
}

// Fill marks every posting of batch as filled, points it at postings of
// replacementBatch, and copies status and replacedBy onto each existing
// translated copy. A dry run computes the same items without writing.
func (f *Filler) Fill(batch, replacementBatch string, dryRun bool) ([]FillItem, error) {
	if _, err := model.ParseDate(batch); err != nil {
		return nil, model.UsageError("--batch must be YYYY-MM-DD, got %q", batch)
	}
	if _, err := model.ParseDate(replacementBatch); err != nil {
		return nil, model.UsageError("--replaced-by must be YYYY-MM-DD, got %q", replacementBatch)
	}

	toFill, err := f.store.LoadBatch(batch)
	if err != nil {
		return nil, err
	}
	if len(toFill) == 0 {
		return nil, model.NotFoundError(fmt.Sprintf("no postings with batchDate %s", batch), nil)
	}

	// Selection reads the tree as it was before this run.
	selections := make([][]model.Replacement, len(toFill))
	for i, p := range toFill {
		selections[i], err = f.SelectReplacements(p.Category, replacementBatch, p.Slug(), f.maxReplacements)
		if err != nil {
			return nil, err
		}
	}

	items := make([]FillItem, 0, len(toFill))
	for i, p := range toFill {
		item := FillItem{Category: p.Category, Slug: p.Slug(), ReplacedBy: selections[i]}

		p.Status = model.StatusFilled
		p.ReplacedBy = selections[i]
		if !dryRun {
			if err := f.store.SaveJob(p); err != nil {
				return items, fmt.Errorf("save %s/%s: %w", p.Category, p.Slug(), err)
			}
		}

		for _, lang := range f.languages {
			synced, err := f.syncTranslation(lang, p, dryRun)
			if err != nil {
				return items, err
			}
			if synced {
				item.Translations = append(item.Translations, lang)
			}
		}

		f.logger.Info("filled posting",
			"category", p.Category,
			"slug", p.Slug(),
			"replaced_by", len(item.ReplacedBy),
			"translations", len(item.Translations),
			"dry_run", dryRun,
		)
		items = append(items, item)
	}
	return items, nil
}

// syncTranslation copies status and replacedBy onto one translated copy.
// It reports whether the copy exists.
func (f *Filler) syncTranslation(lang string, src *model.JobPosting, dryRun bool) (bool, error) {
	t, err := f.store.LoadTranslation(lang, src.Category, src.Slug())
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	t.Status = src.Status
	t.ReplacedBy = append([]model.Replacement(nil), src.ReplacedBy...)
	if dryRun {
		return true, nil
	}
	if err := f.store.SaveTranslation(lang, t); err != nil {
		return false, fmt.Errorf("save %s/%s/%s: %w", lang, src.Category, src.Slug(), err)
	}
	return true, nil
}
