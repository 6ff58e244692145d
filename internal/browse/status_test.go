package browse

import (
	"io"
	"log/slog"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/filter"
	"github.com/abbababa/careers/internal/generate"
	"github.com/abbababa/careers/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seed writes one generated batch, German copies of every engineering
// posting, and one stale Japanese copy.
func seed(t *testing.T) *content.Store {
	t.Helper()
	store := content.NewStore(t.TempDir())
	_, err := generate.New(store, generate.Catalog, discardLogger()).Run("2026-03-07", 14)
	require.NoError(t, err)

	eng, err := store.LoadCategory("engineering")
	require.NoError(t, err)
	for _, p := range eng {
		de := p.Clone()
		de.Lang = "de"
		require.NoError(t, store.SaveTranslation("de", de))
	}
	ja := eng[0].Clone()
	ja.Lang = "ja"
	ja.ContentHash = "0000000000000000"
	require.NoError(t, store.SaveTranslation("ja", ja))
	return store
}

func TestCompute(t *testing.T) {
	store := seed(t)
	rep, err := Compute(store, model.TargetLanguages, filter.TaskFilter{})
	require.NoError(t, err)

	assert.Equal(t, model.TargetLanguages, rep.Languages)
	assert.Len(t, rep.Rows, 56)
	assert.Len(t, rep.Categories(), 8)

	counts := rep.Counts()
	de := counts[4]
	assert.Equal(t, Counts{Current: 7, Missing: 49}, de)
	ja := counts[5]
	assert.Equal(t, Counts{Stale: 1, Missing: 55}, ja)
	assert.Equal(t, Counts{Missing: 56}, counts[0])
}

func TestCompute_Filtered(t *testing.T) {
	store := seed(t)
	rep, err := Compute(store, model.TargetLanguages, filter.TaskFilter{Lang: "de", Category: "engineering"})
	require.NoError(t, err)

	assert.Equal(t, []string{"de"}, rep.Languages)
	require.Len(t, rep.Rows, 7)
	for _, row := range rep.Rows {
		assert.Equal(t, StateCurrent, row.State(rep.Languages, "de"))
		assert.Empty(t, row.State(rep.Languages, "ja"))
	}
}

func TestCompute_UnreadableCopyIsStale(t *testing.T) {
	store := seed(t)
	eng, err := store.LoadCategory("engineering")
	require.NoError(t, err)
	path := store.TranslationPath("de", "engineering", eng[1].Slug())
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	rep, err := Compute(store, []string{"de"}, filter.TaskFilter{Category: "engineering"})
	require.NoError(t, err)
	assert.Equal(t, StateStale, rep.Rows[1].States[0])
	assert.Equal(t, Counts{Current: 6, Stale: 1}, rep.Counts()[0])
}

func TestReport_InCategoryAndFilled(t *testing.T) {
	store := seed(t)
	rep, err := Compute(store, model.TargetLanguages, filter.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, rep.InCategory(""), 56)
	assert.Len(t, rep.InCategory("general"), 7)
	assert.Zero(t, rep.Filled())

	rep.Rows[0].Posting.Status = model.StatusFilled
	assert.Equal(t, 1, rep.Filled())
}

func TestPicker(t *testing.T) {
	store := seed(t)
	rep, err := Compute(store, []string{"de"}, filter.TaskFilter{})
	require.NoError(t, err)

	m := newPickerModel(rep)
	require.Len(t, m.entries, 9)
	assert.Equal(t, 56, m.entries[0].postings)
	assert.Equal(t, 49, m.entries[0].stale)

	var next tea.Model = m
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cat, ok := next.(pickerModel).selection()
	assert.True(t, ok)
	assert.Equal(t, rep.Categories()[0], cat)

	quit, _ := newPickerModel(rep).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	_, ok = quit.(pickerModel).selection()
	assert.False(t, ok)
}

func TestBrowseModel_Navigation(t *testing.T) {
	store := seed(t)
	rep, err := Compute(store, model.TargetLanguages, filter.TaskFilter{})
	require.NoError(t, err)

	var m tea.Model = newBrowseModel(rep, "engineering", "https://careers.abbababa.com")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	for range 20 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	bm := m.(browseModel)
	assert.Equal(t, 6, bm.cursor, "cursor stops at the last row")
	assert.Contains(t, bm.View(), "Postings (7)")
	assert.Contains(t, bm.renderDetail(), "current")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, m.(browseModel).wantQuit)
}
