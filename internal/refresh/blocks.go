package refresh

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/model"
)

// Block is one shared markdown file under the shared directory.
type Block struct {
	Path string // slash-separated, relative to the shared directory
	ID   string
	Hash string
}

// Key is the block's entry name in the hash cache.
func (b Block) Key() string { return CacheKey(b.Path) }

// BlockID converts a relative block path to the identifier postings use:
// the extension is dropped and the first "/" becomes ":".
func BlockID(rel string) string {
	id := strings.TrimSuffix(strings.TrimSuffix(rel, ".mdx"), ".md")
	return strings.Replace(id, "/", ":", 1)
}

// CacheKey returns the cache entry name for a relative block path.
func CacheKey(rel string) string { return "shared:" + rel }

// References reports whether any of refs names the block id, either exactly
// or as a suffix.
func References(refs []string, id string) bool {
	for _, ref := range refs {
		if ref == id || strings.HasSuffix(ref, id) {
			return true
		}
	}
	return false
}

// ScanBlocks hashes every .md and .mdx file below dir, sorted by path.
// A missing directory has no blocks.
func ScanBlocks(dir string) ([]Block, error) {
	var blocks []Block
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == dir {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, ".md") && !strings.HasSuffix(name, ".mdx") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read block %s: %w", path, err)
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		blocks = append(blocks, Block{Path: rel, ID: BlockID(rel), Hash: model.Hash16(string(data))})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan shared blocks: %w", err)
	}
	slices.SortFunc(blocks, func(a, b Block) int { return strings.Compare(a.Path, b.Path) })
	return blocks, nil
}

// BlockCache is the persisted map of block cache keys to content hashes.
type BlockCache struct {
	path   string
	hashes map[string]string
}

// LoadBlockCache reads the cache at path. A missing file is an empty cache.
func LoadBlockCache(path string) (*BlockCache, error) {
	c := &BlockCache{path: path, hashes: map[string]string{}}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read block cache: %w", err)
	}
	if err := json.Unmarshal(data, &c.hashes); err != nil {
		return nil, model.InvalidError("decode block cache "+path, err)
	}
	if c.hashes == nil {
		c.hashes = map[string]string{}
	}
	return c, nil
}

// Save writes the cache back atomically with sorted keys.
func (c *BlockCache) Save() error {
	data, err := json.MarshalIndent(c.hashes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode block cache: %w", err)
	}
	return content.WriteFileAtomic(c.path, append(data, '\n'))
}

// Get returns the cached hash for key.
func (c *BlockCache) Get(key string) (string, bool) {
	h, ok := c.hashes[key]
	return h, ok
}

func (c *BlockCache) Len() int { return len(c.hashes) }

// Change is one block whose content differs from the cache.
type Change struct {
	ID      string
	Key     string
	Deleted bool
}

// Apply records the current blocks in the cache and returns what changed:
// new or edited blocks, and cached blocks that no longer exist on disk.
// Deleted blocks are dropped from the cache.
func (c *BlockCache) Apply(blocks []Block) []Change {
	var changes []Change
	present := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		key := b.Key()
		present[key] = true
		if old, ok := c.hashes[key]; ok && old == b.Hash {
			continue
		}
		c.hashes[key] = b.Hash
		changes = append(changes, Change{ID: b.ID, Key: key})
	}

	var gone []string
	for key := range c.hashes {
		if strings.HasPrefix(key, "shared:") && !present[key] {
			gone = append(gone, key)
		}
	}
	slices.Sort(gone)
	for _, key := range gone {
		delete(c.hashes, key)
		changes = append(changes, Change{ID: BlockID(strings.TrimPrefix(key, "shared:")), Key: key, Deleted: true})
	}
	return changes
}
