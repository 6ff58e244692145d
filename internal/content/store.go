package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abbababa/careers/internal/model"
)

const (
	jobsDir         = "jobs"
	translationsDir = "translations"
	sharedDir       = "shared"
	blockCacheFile  = ".block-hashes.json"
	lockFile        = ".careers.lock"
)

// Store reads and writes posting documents under a content root:
//
//	<root>/jobs/<category>/<slug>.json
//	<root>/translations/<lang>/<category>/<slug>.json
//	<root>/shared/**.md(x)
//
// Missing directories read as empty; they are created on write.
type Store struct {
	root string
}

// NewStore returns a store rooted at root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string { return s.root }

// SharedDir is where reusable markdown blocks live.
func (s *Store) SharedDir() string { return filepath.Join(s.root, sharedDir) }

// BlockCachePath is the persisted shared-block hash cache.
func (s *Store) BlockCachePath() string { return filepath.Join(s.root, blockCacheFile) }

// JobPath returns the English document path for category/slug.
func (s *Store) JobPath(category, slug string) string {
	return filepath.Join(s.root, jobsDir, category, slug+".json")
}

// TranslationPath returns the translated copy path for lang/category/slug.
func (s *Store) TranslationPath(lang, category, slug string) string {
	return filepath.Join(s.root, translationsDir, lang, category, slug+".json")
}

// Categories lists the category directories under jobs/, sorted.
func (s *Store) Categories() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, jobsDir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	var cats []string
	for _, e := range entries {
		if e.IsDir() {
			cats = append(cats, e.Name())
		}
	}
	sort.Strings(cats)
	return cats, nil
}

// Slugs lists the posting slugs of a category in file-name order.
func (s *Store) Slugs(category string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, jobsDir, category))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", category, err)
	}
	var slugs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// LoadJob reads and validates one English posting. The record must name the
// category and slug it is stored under.
func (s *Store) LoadJob(category, slug string) (*model.JobPosting, error) {
	return readPosting(s.JobPath(category, slug), category, slug)
}

// LoadCategory reads every posting of a category in file-name order.
func (s *Store) LoadCategory(category string) ([]*model.JobPosting, error) {
	slugs, err := s.Slugs(category)
	if err != nil {
		return nil, err
	}
	postings := make([]*model.JobPosting, 0, len(slugs))
	for _, slug := range slugs {
		p, err := s.LoadJob(category, slug)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// LoadAll reads every English posting, ordered by category then file name.
func (s *Store) LoadAll() ([]*model.JobPosting, error) {
	cats, err := s.Categories()
	if err != nil {
		return nil, err
	}
	var all []*model.JobPosting
	for _, cat := range cats {
		postings, err := s.LoadCategory(cat)
		if err != nil {
			return nil, err
		}
		all = append(all, postings...)
	}
	return all, nil
}

// LoadBatch returns every English posting whose batchDate equals batch.
func (s *Store) LoadBatch(batch string) ([]*model.JobPosting, error) {
	all, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	var out []*model.JobPosting
	for _, p := range all {
		if p.BatchDate == batch {
			out = append(out, p)
		}
	}
	return out, nil
}

// LoadTranslation reads a translated copy. A missing copy returns an error
// satisfying errors.Is(err, fs.ErrNotExist).
func (s *Store) LoadTranslation(lang, category, slug string) (*model.JobPosting, error) {
	return readPosting(s.TranslationPath(lang, category, slug), category, slug)
}

// SaveJob writes an English posting, creating directories as needed.
func (s *Store) SaveJob(p *model.JobPosting) error {
	return writePosting(s.JobPath(p.Category, p.Slug()), p)
}

// SaveTranslation writes a translated copy for lang.
func (s *Store) SaveTranslation(lang string, p *model.JobPosting) error {
	return writePosting(s.TranslationPath(lang, p.Category, p.Slug()), p)
}

// Exists reports whether a regular file exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes a file. Removing a file that is already gone is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// DecodePosting parses a posting document. Unknown fields are rejected and
// the result is validated.
func DecodePosting(data []byte) (*model.JobPosting, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var p model.JobPosting
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after posting object")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Normalize()
	return &p, nil
}

// EncodePosting renders a posting with two-space indentation, no HTML
// escaping and a trailing newline.
func EncodePosting(p *model.JobPosting) ([]byte, error) {
	p.Normalize()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readPosting(path, category, slug string) (*model.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := DecodePosting(data)
	if err != nil {
		return nil, model.InvalidError("decode "+path, err)
	}
	// Saves derive the path from these fields, so a mismatch would fork the record.
	if p.Category != category || p.Slug() != slug {
		return nil, model.InvalidError("decode "+path,
			fmt.Errorf("record is %s/%s, file is %s/%s", p.Category, p.Slug(), category, slug))
	}
	return p, nil
}

func writePosting(path string, p *model.JobPosting) error {
	data, err := EncodePosting(p)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return WriteFileAtomic(path, data)
}

// WriteFileAtomic writes data to a temp file beside path and renames it into place.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
