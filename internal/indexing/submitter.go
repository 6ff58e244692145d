package indexing

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/model"
)

// Submitter owns the announcement pipeline for published postings:
// collect pages → dedup against the ledger → notify → mark submitted.
type Submitter struct {
	content   *content.Store
	baseURL   string
	languages []string
	ledger    model.SubmissionStore
	notifier  model.Notifier
	retention time.Duration
	logger    *slog.Logger
}

// NewSubmitter creates a submitter wired with all its dependencies.
func NewSubmitter(
	store *content.Store,
	baseURL string,
	languages []string,
	ledger model.SubmissionStore,
	notifier model.Notifier,
	retention time.Duration,
	logger *slog.Logger,
) *Submitter {
	return &Submitter{
		content:   store,
		baseURL:   strings.TrimRight(baseURL, "/"),
		languages: languages,
		ledger:    ledger,
		notifier:  notifier,
		retention: retention,
		logger:    logger,
	}
}

// PageURL is the public address of a posting in one language.
func PageURL(baseURL, lang, category, slug string) string {
	return fmt.Sprintf("%s/%s/%s/%s", strings.TrimRight(baseURL, "/"), lang, category, slug)
}

// Pages lists every published page: each English posting plus each existing
// translated copy, keyed by the content hash it was built from.
func (s *Submitter) Pages() ([]model.Page, error) {
	postings, err := s.content.LoadAll()
	if err != nil {
		return nil, err
	}

	var pages []model.Page
	for _, p := range postings {
		pages = append(pages, s.page(model.SourceLanguage, p))
		for _, lang := range s.languages {
			t, err := s.content.LoadTranslation(lang, p.Category, p.Slug())
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			pages = append(pages, s.page(lang, t))
		}
	}
	return pages, nil
}

func (s *Submitter) page(lang string, p *model.JobPosting) model.Page {
	return model.Page{
		URL:         PageURL(s.baseURL, lang, p.Category, p.Slug()),
		Lang:        lang,
		Category:    p.Category,
		Slug:        p.Slug(),
		Title:       p.Title,
		ContentHash: p.ContentHash,
	}
}

// Pending returns the pages whose current revision is not in the ledger.
func (s *Submitter) Pending() ([]model.Page, error) {
	pages, err := s.Pages()
	if err != nil {
		return nil, err
	}
	var pending []model.Page
	for _, p := range pages {
		done, err := s.ledger.HasSubmitted(p.Key())
		if err != nil {
			return nil, fmt.Errorf("checking ledger: %w", err)
		}
		if !done {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

// Submit announces every pending page and records it in the ledger. It
// returns the pages that were announced.
func (s *Submitter) Submit(ctx context.Context) ([]model.Page, error) {
	empty, err := s.ledger.IsEmpty()
	if err != nil {
		return nil, err
	}
	if empty {
		s.logger.Info("submission ledger is empty, announcing every page")
	}

	pending, err := s.Pending()
	if err != nil {
		return nil, err
	}

	if len(pending) > 0 {
		if err := s.notifier.Notify(ctx, pending); err != nil {
			return nil, fmt.Errorf("notifying: %w", err)
		}
	}

	for _, p := range pending {
		if err := s.ledger.MarkSubmitted(p.Key()); err != nil {
			return pending, fmt.Errorf("marking submitted: %w", err)
		}
	}

	if s.retention > 0 {
		if err := s.ledger.Cleanup(s.retention); err != nil {
			s.logger.Warn("ledger cleanup failed", "error", err)
		}
	}

	s.logger.Info("submitted pages", "pending", len(pending))
	return pending, nil
}
