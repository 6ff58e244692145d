package lifecycle

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/model"
)

// ExpirePlan lists every file an expire run would delete.
type ExpirePlan struct {
	Batch    string
	Postings int
	Files    []string // relative to the content root, slash-separated, sorted
}

// Token is the confirmation a destructive run must present: the first 12
// hex characters of SHA-256 over the sorted file list.
func (p ExpirePlan) Token() string {
	sum := sha256.Sum256([]byte(strings.Join(p.Files, "\n")))
	return hex.EncodeToString(sum[:])[:12]
}

// Expirer deletes whole batches together with their translations.
type Expirer struct {
	store     *content.Store
	languages []string
	logger    *slog.Logger
}

func NewExpirer(store *content.Store, languages []string, logger *slog.Logger) *Expirer {
	return &Expirer{store: store, languages: languages, logger: logger}
}

// Plan collects the English file and each existing translated copy of every
// posting in batch. It never touches the file system beyond reading.
func (e *Expirer) Plan(batch string) (ExpirePlan, error) {
	plan := ExpirePlan{Batch: batch}
	if _, err := model.ParseDate(batch); err != nil {
		return plan, model.UsageError("--batch must be YYYY-MM-DD, got %q", batch)
	}

	postings, err := e.store.LoadBatch(batch)
	if err != nil {
		return plan, err
	}
	for _, p := range postings {
		plan.Postings++
		plan.Files = append(plan.Files, e.rel(e.store.JobPath(p.Category, p.Slug())))
		for _, lang := range e.languages {
			path := e.store.TranslationPath(lang, p.Category, p.Slug())
			if content.Exists(path) {
				plan.Files = append(plan.Files, e.rel(path))
			}
		}
	}
	slices.Sort(plan.Files)
	return plan, nil
}

// Expire deletes every file in the plan for batch. confirm must equal the
// token of a freshly computed plan, so a tree that changed since the
// preview is refused. It returns the plan that was carried out.
func (e *Expirer) Expire(batch, confirm string) (ExpirePlan, error) {
	plan, err := e.Plan(batch)
	if err != nil {
		return plan, err
	}
	if len(plan.Files) == 0 {
		return plan, nil
	}
	if confirm == "" {
		return plan, model.UsageError("expire deletes %d files; run with --dry-run and pass --confirm=%s", len(plan.Files), plan.Token())
	}
	if confirm != plan.Token() {
		return plan, model.UsageError("--confirm=%s does not match the current plan; re-run with --dry-run", confirm)
	}

	for _, rel := range plan.Files {
		if err := content.Remove(filepath.Join(e.store.Root(), filepath.FromSlash(rel))); err != nil {
			return plan, err
		}
		e.logger.Debug("deleted", "path", rel)
	}
	e.logger.Info("expired batch", "batch", batch, "postings", plan.Postings, "files", len(plan.Files))
	return plan, nil
}

func (e *Expirer) rel(path string) string {
	r, err := filepath.Rel(e.store.Root(), path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(r)
}
