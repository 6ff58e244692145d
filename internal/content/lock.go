package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the content lock.
var ErrLocked = errors.New("another careers command is modifying the content tree")

// Lock takes the advisory lock that serializes mutating commands on this
// content root. The returned func releases it.
func (s *Store) Lock() (func(), error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return nil, fmt.Errorf("create content root: %w", err)
	}
	lock := flock.New(filepath.Join(s.root, lockFile))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() { _ = lock.Unlock() }, nil
}
