package translate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/filter"
	"github.com/abbababa/careers/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTranslator prefixes the title with the language and counts calls.
type fakeTranslator struct {
	calls  atomic.Int64
	mu     sync.Mutex
	failOn map[string]bool // "lang/slug"
}

func (f *fakeTranslator) Translate(_ context.Context, src *model.JobPosting, lang string) (*model.JobPosting, error) {
	f.calls.Add(1)
	f.mu.Lock()
	fail := f.failOn[lang+"/"+src.Slug()]
	f.mu.Unlock()
	if fail {
		return nil, errors.New("model unavailable")
	}
	out := src.Clone()
	out.Title = lang + ": " + src.Title
	out.Lang = lang
	return out, nil
}

func seedJob(t *testing.T, store *content.Store, category, slug, batch, desc string) *model.JobPosting {
	t.Helper()
	p := &model.JobPosting{
		ID:           category + "-" + slug,
		Category:     category,
		Subcategory:  slug,
		BatchDate:    batch,
		Title:        "Role " + slug,
		DatePosted:   batch,
		ValidThrough: batch,
		Description:  desc,
		LastUpdated:  batch,
	}
	p.ContentHash = model.ContentHash(p.Description, p.Responsibilities)
	require.NoError(t, store.SaveJob(p))
	return p
}

func seedStore(t *testing.T) *content.Store {
	t.Helper()
	store := content.NewStore(t.TempDir())
	seedJob(t, store, "engineering", "agent-developer-2026-03-07", "2026-03-07", "build agents")
	seedJob(t, store, "engineering", "sdk-engineer-2026-03-21", "2026-03-21", "build sdks")
	seedJob(t, store, "safety", "red-teamer-2026-03-07", "2026-03-07", "break agents")
	return store
}

func allTasks(t *testing.T, r *Runner) []Task {
	t.Helper()
	tasks, err := r.Plan(filter.TaskFilter{}, model.TargetLanguages)
	require.NoError(t, err)
	return tasks
}

func TestRunner_Plan(t *testing.T) {
	store := seedStore(t)
	r := NewRunner(store, &fakeTranslator{}, 4, discardLogger())

	tests := []struct {
		name   string
		filter filter.TaskFilter
		want   int
	}{
		{name: "everything", filter: filter.TaskFilter{}, want: 3 * 6},
		{name: "one language", filter: filter.TaskFilter{Lang: "de"}, want: 3},
		{name: "one category", filter: filter.TaskFilter{Category: "engineering"}, want: 2 * 6},
		{name: "one batch", filter: filter.TaskFilter{Batch: "2026-03-07", Lang: "ko"}, want: 2},
		{name: "one slug", filter: filter.TaskFilter{Slug: "red-teamer-2026-03-07"}, want: 6},
		{name: "no match", filter: filter.TaskFilter{Category: "economy"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := r.Plan(tt.filter, model.TargetLanguages)
			require.NoError(t, err)
			assert.Len(t, tasks, tt.want)
		})
	}

	tasks, err := r.Plan(filter.TaskFilter{Lang: "zh"}, model.TargetLanguages)
	require.NoError(t, err)
	assert.Equal(t, []Task{
		{Lang: "zh", Category: "engineering", Slug: "agent-developer-2026-03-07"},
		{Lang: "zh", Category: "engineering", Slug: "sdk-engineer-2026-03-21"},
		{Lang: "zh", Category: "safety", Slug: "red-teamer-2026-03-07"},
	}, tasks)
}

func TestRunner_TranslatesMissingCopies(t *testing.T) {
	store := seedStore(t)
	tr := &fakeTranslator{}
	r := NewRunner(store, tr, 4, discardLogger())

	sum, err := r.Run(context.Background(), allTasks(t, r), false)
	require.NoError(t, err)

	assert.Equal(t, Summary{Tasks: 18, Translated: 18}, sum)
	got, err := store.LoadTranslation("ja", "safety", "red-teamer-2026-03-07")
	require.NoError(t, err)
	assert.Equal(t, "ja", got.Lang)
	assert.Equal(t, "ja: Role red-teamer-2026-03-07", got.Title)
}

func TestRunner_SkipsCurrentCopies(t *testing.T) {
	store := seedStore(t)
	r := NewRunner(store, &fakeTranslator{}, 4, discardLogger())
	_, err := r.Run(context.Background(), allTasks(t, r), false)
	require.NoError(t, err)

	path := store.TranslationPath("de", "engineering", "agent-developer-2026-03-07")
	before, err := os.Stat(path)
	require.NoError(t, err)

	tr := &fakeTranslator{}
	r = NewRunner(store, tr, 4, discardLogger())
	sum, err := r.Run(context.Background(), allTasks(t, r), false)
	require.NoError(t, err)

	assert.Equal(t, int64(0), tr.calls.Load(), "no model calls when every hash matches")
	assert.Equal(t, Summary{Tasks: 18, Skipped: 18}, sum)
	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime(), "current copy must not be rewritten")
}

func TestRunner_ChangedSourceRetranslates(t *testing.T) {
	store := seedStore(t)
	r := NewRunner(store, &fakeTranslator{}, 4, discardLogger())
	_, err := r.Run(context.Background(), allTasks(t, r), false)
	require.NoError(t, err)

	seedJob(t, store, "engineering", "agent-developer-2026-03-07", "2026-03-07", "build better agents")

	tr := &fakeTranslator{}
	r = NewRunner(store, tr, 4, discardLogger())
	sum, err := r.Run(context.Background(), allTasks(t, r), false)
	require.NoError(t, err)
	assert.Equal(t, 6, sum.Translated)
	assert.Equal(t, 12, sum.Skipped)
	assert.Equal(t, int64(6), tr.calls.Load())
}

func TestRunner_ForceIgnoresHashes(t *testing.T) {
	store := seedStore(t)
	r := NewRunner(store, &fakeTranslator{}, 4, discardLogger())
	_, err := r.Run(context.Background(), allTasks(t, r), false)
	require.NoError(t, err)

	tr := &fakeTranslator{}
	r = NewRunner(store, tr, 4, discardLogger())
	sum, err := r.Run(context.Background(), allTasks(t, r), true)
	require.NoError(t, err)
	assert.Equal(t, 18, sum.Translated)
	assert.Equal(t, int64(18), tr.calls.Load())
}

func TestRunner_FailureIsolation(t *testing.T) {
	store := seedStore(t)
	tr := &fakeTranslator{failOn: map[string]bool{
		"de/agent-developer-2026-03-07": true,
		"ko/red-teamer-2026-03-07":      true,
	}}
	r := NewRunner(store, tr, 20, discardLogger())

	sum, err := r.Run(context.Background(), allTasks(t, r), false)
	require.NoError(t, err)
	assert.Equal(t, Summary{Tasks: 18, Translated: 16, Failed: 2}, sum)

	_, err = store.LoadTranslation("de", "engineering", "agent-developer-2026-03-07")
	assert.ErrorIs(t, err, os.ErrNotExist, "failed task must not write a file")
	_, err = store.LoadTranslation("de", "engineering", "sdk-engineer-2026-03-21")
	assert.NoError(t, err)
}

func TestRunner_UnreadableCopyIsStale(t *testing.T) {
	store := seedStore(t)
	path := store.TranslationPath("es", "safety", "red-teamer-2026-03-07")
	require.NoError(t, content.WriteFileAtomic(path, []byte("{not json")))

	tr := &fakeTranslator{}
	r := NewRunner(store, tr, 1, discardLogger())
	sum, err := r.Run(context.Background(), []Task{{Lang: "es", Category: "safety", Slug: "red-teamer-2026-03-07"}}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Translated)

	got, err := store.LoadTranslation("es", "safety", "red-teamer-2026-03-07")
	require.NoError(t, err)
	assert.Equal(t, "es", got.Lang)
}

func TestRunner_EmptyPlan(t *testing.T) {
	r := NewRunner(content.NewStore(t.TempDir()), &fakeTranslator{}, 20, discardLogger())
	sum, err := r.Run(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
}

func TestRunner_CancelledContext(t *testing.T) {
	store := seedStore(t)
	tr := &fakeTranslator{}
	r := NewRunner(store, tr, 2, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Run(ctx, allTasks(t, r), false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), tr.calls.Load())
}
