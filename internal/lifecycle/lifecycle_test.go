package lifecycle

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/generate"
	"github.com/abbababa/careers/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seed writes two generated batches and German copies of the first.
func seed(t *testing.T) *content.Store {
	t.Helper()
	store := content.NewStore(t.TempDir())
	g := generate.New(store, generate.Catalog, discardLogger())
	_, err := g.Run("2026-03-07", 14)
	require.NoError(t, err)
	_, err = g.Run("2026-03-21", 14)
	require.NoError(t, err)

	first, err := store.LoadBatch("2026-03-07")
	require.NoError(t, err)
	for _, p := range first {
		de := p.Clone()
		de.Lang = "de"
		de.Title = "DE " + p.Title
		require.NoError(t, store.SaveTranslation("de", de))
	}
	return store
}

func TestSelectReplacements(t *testing.T) {
	store := seed(t)
	f := NewFiller(store, model.TargetLanguages, 5, discardLogger())

	got, err := f.SelectReplacements("engineering", "2026-03-21", "", 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Slug, got[i].Slug, "file-name order")
	}
	for _, r := range got {
		assert.Equal(t, "engineering", r.Category)
		assert.Contains(t, r.Slug, "2026-03-21")
		assert.NotEmpty(t, r.Title)
	}

	again, err := f.SelectReplacements("engineering", "2026-03-21", "", 5)
	require.NoError(t, err)
	assert.Equal(t, got, again, "selection is deterministic")
}

func TestSelectReplacements_SkipsFilledAndSelf(t *testing.T) {
	store := seed(t)
	f := NewFiller(store, model.TargetLanguages, 5, discardLogger())

	all, err := f.SelectReplacements("engineering", "2026-03-21", "", 10)
	require.NoError(t, err)
	require.Len(t, all, 7)

	p, err := store.LoadJob("engineering", all[0].Slug)
	require.NoError(t, err)
	p.Status = model.StatusFilled
	require.NoError(t, store.SaveJob(p))

	got, err := f.SelectReplacements("engineering", "2026-03-21", all[1].Slug, 10)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	for _, r := range got {
		assert.NotEqual(t, all[0].Slug, r.Slug)
		assert.NotEqual(t, all[1].Slug, r.Slug)
	}
}

func TestFill(t *testing.T) {
	store := seed(t)
	f := NewFiller(store, model.TargetLanguages, 5, discardLogger())

	items, err := f.Fill("2026-03-07", "2026-03-21", false)
	require.NoError(t, err)
	assert.Len(t, items, 56)

	first, err := store.LoadBatch("2026-03-07")
	require.NoError(t, err)
	for _, p := range first {
		assert.Equal(t, model.StatusFilled, p.Status, p.Slug())
		assert.LessOrEqual(t, len(p.ReplacedBy), 5)
		assert.NotEmpty(t, p.ReplacedBy, p.Slug())
		for _, r := range p.ReplacedBy {
			assert.Equal(t, p.Category, r.Category)
		}

		de, err := store.LoadTranslation("de", p.Category, p.Slug())
		require.NoError(t, err)
		assert.Equal(t, p.Status, de.Status)
		assert.Equal(t, p.ReplacedBy, de.ReplacedBy)
		assert.Equal(t, "DE "+p.Title, de.Title, "translated text untouched")
	}

	second, err := store.LoadBatch("2026-03-21")
	require.NoError(t, err)
	for _, p := range second {
		assert.False(t, p.IsFilled())
	}
}

func TestFill_DryRunMatchesRealRun(t *testing.T) {
	store := seed(t)
	f := NewFiller(store, model.TargetLanguages, 5, discardLogger())

	before, err := store.LoadAll()
	require.NoError(t, err)

	preview, err := f.Fill("2026-03-07", "2026-03-21", true)
	require.NoError(t, err)

	after, err := store.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, before, after, "dry run writes nothing")

	applied, err := f.Fill("2026-03-07", "2026-03-21", false)
	require.NoError(t, err)
	assert.Equal(t, preview, applied)
	assert.Equal(t, []string{"de"}, applied[0].Translations)
}

func TestFill_Errors(t *testing.T) {
	store := seed(t)
	f := NewFiller(store, model.TargetLanguages, 5, discardLogger())

	_, err := f.Fill("2025-01-01", "2026-03-21", false)
	assert.True(t, model.IsKind(err, model.KindNotFound), "got %v", err)

	_, err = f.Fill("March", "2026-03-21", false)
	assert.True(t, model.IsKind(err, model.KindUsage), "got %v", err)

	_, err = f.Fill("2026-03-07", "", false)
	assert.True(t, model.IsKind(err, model.KindUsage), "got %v", err)
}

func TestExpire_PlanAndCascade(t *testing.T) {
	store := seed(t)
	e := NewExpirer(store, model.TargetLanguages, discardLogger())

	plan, err := e.Plan("2026-03-07")
	require.NoError(t, err)
	assert.Equal(t, 56, plan.Postings)
	assert.Len(t, plan.Files, 56*2)
	assert.Len(t, plan.Token(), 12)

	// Dry run leaves every file in place.
	for _, rel := range plan.Files {
		assert.FileExists(t, store.Root()+"/"+rel)
	}

	done, err := e.Expire("2026-03-07", plan.Token())
	require.NoError(t, err)
	assert.Equal(t, plan.Files, done.Files)

	for _, rel := range plan.Files {
		assert.NoFileExists(t, store.Root()+"/"+rel)
	}
	remaining, err := store.LoadAll()
	require.NoError(t, err)
	assert.Len(t, remaining, 56)
	for _, p := range remaining {
		assert.Equal(t, "2026-03-21", p.BatchDate)
	}
}

func TestExpire_RequiresMatchingToken(t *testing.T) {
	store := seed(t)
	e := NewExpirer(store, model.TargetLanguages, discardLogger())

	plan, err := e.Plan("2026-03-07")
	require.NoError(t, err)

	_, err = e.Expire("2026-03-07", "")
	assert.True(t, model.IsKind(err, model.KindUsage))

	_, err = e.Expire("2026-03-07", "000000000000")
	assert.True(t, model.IsKind(err, model.KindUsage))

	// A tree change after the preview invalidates the token.
	p, err := store.LoadJob("engineering", "agent-developer-2026-03-07")
	require.NoError(t, err)
	ja := p.Clone()
	ja.Lang = "ja"
	require.NoError(t, store.SaveTranslation("ja", ja))
	_, err = e.Expire("2026-03-07", plan.Token())
	assert.True(t, model.IsKind(err, model.KindUsage))

	for _, rel := range plan.Files {
		assert.FileExists(t, store.Root()+"/"+rel)
	}
}

func TestExpire_EmptyBatch(t *testing.T) {
	store := seed(t)
	e := NewExpirer(store, model.TargetLanguages, discardLogger())

	plan, err := e.Expire("2025-01-01", "")
	require.NoError(t, err)
	assert.Empty(t, plan.Files)

	_, err = e.Plan("")
	assert.True(t, model.IsKind(err, model.KindUsage))
}
