package browse

import (
	"errors"
	"io/fs"
	"slices"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/filter"
	"github.com/abbababa/careers/internal/model"
)

// CopyState is the state of one translated copy relative to its source.
type CopyState string

const (
	StateCurrent CopyState = "current"
	StateStale   CopyState = "stale"
	StateMissing CopyState = "missing"
)

// Row is one English posting and the state of each of its translations.
type Row struct {
	Posting *model.JobPosting
	States  []CopyState // aligned with Report.Languages
}

// State returns the copy state for lang, or "" if lang is not tracked.
func (r Row) State(languages []string, lang string) CopyState {
	i := slices.Index(languages, lang)
	if i < 0 {
		return ""
	}
	return r.States[i]
}

// Report is the translation status of the postings that matched a filter.
type Report struct {
	Languages []string
	Rows      []Row
}

// Counts tallies copy states per language.
type Counts struct {
	Current int
	Stale   int
	Missing int
}

// Compute loads every posting matching f and compares each translated copy's
// content hash with the source. An unreadable copy counts as stale.
func Compute(store *content.Store, languages []string, f filter.TaskFilter) (*Report, error) {
	langs := make([]string, 0, len(languages))
	for _, l := range languages {
		if f.MatchLang(l) {
			langs = append(langs, l)
		}
	}

	all, err := store.LoadAll()
	if err != nil {
		return nil, err
	}

	rep := &Report{Languages: langs}
	for _, p := range all {
		if !f.Match(p) {
			continue
		}
		row := Row{Posting: p, States: make([]CopyState, len(langs))}
		for i, lang := range langs {
			row.States[i] = copyState(store, lang, p)
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep, nil
}

func copyState(store *content.Store, lang string, src *model.JobPosting) CopyState {
	dest, err := store.LoadTranslation(lang, src.Category, src.Slug())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return StateMissing
	case err != nil:
		return StateStale
	case dest.ContentHash != src.ContentHash:
		return StateStale
	default:
		return StateCurrent
	}
}

// Counts returns the per-language tally, in Languages order.
func (r *Report) Counts() []Counts {
	out := make([]Counts, len(r.Languages))
	for _, row := range r.Rows {
		for i, s := range row.States {
			switch s {
			case StateCurrent:
				out[i].Current++
			case StateStale:
				out[i].Stale++
			case StateMissing:
				out[i].Missing++
			}
		}
	}
	return out
}

// Categories returns the distinct categories in the report, sorted.
func (r *Report) Categories() []string {
	var cats []string
	for _, row := range r.Rows {
		if !slices.Contains(cats, row.Posting.Category) {
			cats = append(cats, row.Posting.Category)
		}
	}
	slices.Sort(cats)
	return cats
}

// InCategory returns the rows for one category. An empty category returns
// every row.
func (r *Report) InCategory(category string) []Row {
	if category == "" {
		return r.Rows
	}
	var rows []Row
	for _, row := range r.Rows {
		if row.Posting.Category == category {
			rows = append(rows, row)
		}
	}
	return rows
}

// Filled reports how many postings in the report are filled.
func (r *Report) Filled() int {
	n := 0
	for _, row := range r.Rows {
		if row.Posting.IsFilled() {
			n++
		}
	}
	return n
}
