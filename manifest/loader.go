package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/memio-dev/memio/vfs"
)

// DefaultMaxFileSize bounds a single path-backed seed file (32MB).
const DefaultMaxFileSize = 32 << 20

// Loader parses manifests and seeds their files into a store.
type Loader struct {
	baseDir     string
	maxFileSize int64
}

// LoaderOption configures the Loader.
type LoaderOption func(*Loader)

// WithBaseDir resolves relative Path entries against dir. Defaults to the
// process working directory.
func WithBaseDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.baseDir = dir
	}
}

// WithMaxFileSize caps the size of a path-backed seed file. A size <= 0
// uses DefaultMaxFileSize.
func WithMaxFileSize(size int64) LoaderOption {
	return func(l *Loader) {
		if size <= 0 {
			size = DefaultMaxFileSize
		}
		l.maxFileSize = size
	}
}

// NewLoader creates a Loader with defaults.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses a manifest document and seeds it into store.
func (l *Loader) Load(data []byte, store *vfs.Store) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	return l.Seed(m, store)
}

// Seed registers every manifest entry into store, in order. It stops at the
// first failure, leaving earlier entries registered.
func (l *Loader) Seed(m *Manifest, store *vfs.Store) error {
	for _, entry := range m.Files {
		contents, err := l.contents(entry)
		if err != nil {
			return fmt.Errorf("seed %q: %w", entry.Name, err)
		}
		if err := store.Register(entry.Name, contents, entry.Overwrite); err != nil {
			return fmt.Errorf("seed %q: %w", entry.Name, err)
		}
	}
	return nil
}

// contents resolves one entry's bytes, reading path-backed entries from host
// disk.
func (l *Loader) contents(entry FileEntry) ([]byte, error) {
	if entry.Path == "" {
		return []byte(entry.Content), nil
	}

	path := entry.Path
	if l.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.baseDir, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > l.maxFileSize {
		return nil, fmt.Errorf("file %s is %d bytes, limit is %d", path, info.Size(), l.maxFileSize)
	}

	return os.ReadFile(path)
}
