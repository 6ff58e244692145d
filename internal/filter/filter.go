package filter

import (
	"github.com/abbababa/careers/internal/model"
)

// TaskFilter narrows a translation run. Empty fields match everything.
type TaskFilter struct {
	Lang     string
	Category string
	Batch    string
	Slug     string
}

// MatchLang reports whether lang passes the language filter.
func (f TaskFilter) MatchLang(lang string) bool {
	return f.Lang == "" || f.Lang == lang
}

// MatchCategory reports whether category passes the category filter.
func (f TaskFilter) MatchCategory(category string) bool {
	return f.Category == "" || f.Category == category
}

// MatchSlug reports whether a dated slug passes the slug filter. The slug
// filter is exact; it selects one posting across every category.
func (f TaskFilter) MatchSlug(slug string) bool {
	return f.Slug == "" || f.Slug == slug
}

// Match reports whether a posting passes the category, slug and batch filters.
func (f TaskFilter) Match(p *model.JobPosting) bool {
	if !f.MatchCategory(p.Category) || !f.MatchSlug(p.Slug()) {
		return false
	}
	return f.Batch == "" || f.Batch == p.BatchDate
}

// Validate checks the filter values are well-formed before any I/O.
func (f TaskFilter) Validate() error {
	if f.Lang != "" && !model.IsTargetLanguage(f.Lang) {
		return model.UsageError("--lang must be one of %v, got %q", model.TargetLanguages, f.Lang)
	}
	if f.Batch != "" {
		if _, err := model.ParseDate(f.Batch); err != nil {
			return model.UsageError("--batch must be YYYY-MM-DD, got %q", f.Batch)
		}
	}
	return nil
}
