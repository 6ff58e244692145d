package model

import (
	"context"
	"time"
)

// Page is one published URL of a posting in one language.
type Page struct {
	URL         string
	Lang        string
	Category    string
	Slug        string
	Title       string
	ContentHash string
}

// Key identifies a page revision: the URL plus the content it was built from.
func (p Page) Key() string {
	return p.URL + "#" + p.ContentHash
}

// SubmissionStore tracks which page revisions have already been announced.
type SubmissionStore interface {
	HasSubmitted(key string) (bool, error)
	MarkSubmitted(key string) error
	Cleanup(olderThan time.Duration) error
	IsEmpty() (bool, error)
}

// Notifier announces new or changed pages to an external service.
type Notifier interface {
	Notify(ctx context.Context, pages []Page) error
}
