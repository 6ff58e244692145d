package filter

import (
	"testing"

	"github.com/abbababa/careers/internal/model"
)

func posting(category, slug, batch string) *model.JobPosting {
	return &model.JobPosting{Category: category, Subcategory: slug, BatchDate: batch}
}

func TestTaskFilter_Match(t *testing.T) {
	tests := []struct {
		name      string
		filter    TaskFilter
		posting   *model.JobPosting
		wantMatch bool
	}{
		{
			name:      "empty filter matches all",
			filter:    TaskFilter{},
			posting:   posting("engineering", "agent-developer-2026-03-07", "2026-03-07"),
			wantMatch: true,
		},
		{
			name:      "category match",
			filter:    TaskFilter{Category: "engineering"},
			posting:   posting("engineering", "agent-developer-2026-03-07", "2026-03-07"),
			wantMatch: true,
		},
		{
			name:      "category miss",
			filter:    TaskFilter{Category: "safety"},
			posting:   posting("engineering", "agent-developer-2026-03-07", "2026-03-07"),
			wantMatch: false,
		},
		{
			name:      "batch miss",
			filter:    TaskFilter{Batch: "2026-03-21"},
			posting:   posting("engineering", "agent-developer-2026-03-07", "2026-03-07"),
			wantMatch: false,
		},
		{
			name:      "slug is exact",
			filter:    TaskFilter{Slug: "agent-developer"},
			posting:   posting("engineering", "agent-developer-2026-03-07", "2026-03-07"),
			wantMatch: false,
		},
		{
			name:      "all filters match",
			filter:    TaskFilter{Category: "engineering", Batch: "2026-03-07", Slug: "agent-developer-2026-03-07"},
			posting:   posting("engineering", "agent-developer-2026-03-07", "2026-03-07"),
			wantMatch: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Match(tt.posting)
			if got != tt.wantMatch {
				t.Errorf("Match() = %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

func TestTaskFilter_MatchLang(t *testing.T) {
	if !(TaskFilter{}).MatchLang("de") {
		t.Error("empty lang filter should match de")
	}
	if (TaskFilter{Lang: "ja"}).MatchLang("de") {
		t.Error("ja filter should not match de")
	}
}

func TestTaskFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  TaskFilter
		wantErr bool
	}{
		{name: "empty", filter: TaskFilter{}},
		{name: "good lang and batch", filter: TaskFilter{Lang: "de", Batch: "2026-03-07"}},
		{name: "english is not a target", filter: TaskFilter{Lang: "en"}, wantErr: true},
		{name: "bad batch", filter: TaskFilter{Batch: "March"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !model.IsKind(err, model.KindUsage) {
				t.Errorf("expected usage error, got %v", err)
			}
		})
	}
}
