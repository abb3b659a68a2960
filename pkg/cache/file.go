package cache

import (
	"context"
	"encoding/binary"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/stackbar/pkg/errors"
)

// headerSize is the length of the expiry prefix of every entry file.
const headerSize = 8

// FileCache stores one file per entry under dir/<kind>/<hash>, where kind is
// the key's prefix ("dataset", "artifact"). Each file starts with the
// entry's expiry as big-endian Unix nanoseconds (zero never expires)
// followed by the raw value.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if dir == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "cache directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create cache directory %s", dir)
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

// Dir returns the cache root.
func (c *FileCache) Dir() string { return c.dir }

// Get returns the entry for key. Expired or truncated entries are removed
// and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(raw) < headerSize || c.expired(raw) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return raw[headerSize:], true, nil
}

// Set writes the entry to a temporary file and renames it into place, so
// concurrent readers never see a partial entry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var expires int64
	if ttl > 0 {
		expires = c.now().Add(ttl).UnixNano()
	}
	buf := make([]byte, headerSize+len(data))
	binary.BigEndian.PutUint64(buf, uint64(expires))
	copy(buf[headerSize:], data)

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the entry for key.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Prune removes expired entries and returns how many were removed. With all
// set it removes every entry.
func (c *FileCache) Prune(ctx context.Context, all bool) (int, error) {
	removed := 0
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !all {
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if len(raw) >= headerSize && !c.expired(raw) {
				return nil
			}
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		removed++
		return nil
	})
	return removed, err
}

// Close is a no-op.
func (c *FileCache) Close() error {
	return nil
}

func (c *FileCache) expired(raw []byte) bool {
	expires := int64(binary.BigEndian.Uint64(raw[:headerSize]))
	return expires != 0 && c.now().UnixNano() > expires
}

func (c *FileCache) path(key string) string {
	kind := "misc"
	if i := strings.IndexByte(key, ':'); i > 0 {
		kind = sanitize(key[:i])
	}
	return filepath.Join(c.dir, kind, Hash([]byte(key)))
}

// sanitize keeps scoped prefixes like "out:" from escaping the cache root.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, strings.ToLower(s))
}

var _ Cache = (*FileCache)(nil)
