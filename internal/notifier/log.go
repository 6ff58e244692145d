package notifier

import (
	"context"
	"log/slog"

	"github.com/abbababa/careers/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes each changed page to the logger.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs each page. Logging does not fail.
func (n *LogNotifier) Notify(_ context.Context, pages []model.Page) error {
	for _, p := range pages {
		n.logger.Info("page changed",
			"lang", p.Lang,
			"category", p.Category,
			"slug", p.Slug,
			"title", p.Title,
			"url", p.URL,
		)
	}
	return nil
}

// Multi fans one notification out to several notifiers. Every notifier is
// tried; the first error is returned.
type Multi []model.Notifier

func (m Multi) Notify(ctx context.Context, pages []model.Page) error {
	var first error
	for _, n := range m {
		if err := n.Notify(ctx, pages); err != nil && first == nil {
			first = err
		}
	}
	return first
}
