// Package cache is a small disk-backed key-value store with per-entry
// expiry. twidgets uses it to avoid re-querying slow network sources (the
// weather API) on every prompt.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTTL is applied by Put when the store was opened without a TTL.
const DefaultTTL = 10 * time.Minute

// entry is the JSON structure persisted for each key.
type entry struct {
	Key     string `json:"key"`
	Created int64  `json:"created"` // UnixNano
	TTLNS   int64  `json:"ttl_ns"`  // 0 = no TTL
	Data    []byte `json:"data"`
}

// Store keeps one {hash}.cache file per key. Writes are atomic via
// temp-file-then-rename so concurrent twidgets processes never observe a
// partial entry. A Store holds no open files and needs no Close.
type Store struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// DefaultDir returns $XDG_CACHE_HOME/twidgets (or the platform equivalent).
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cache: locate user cache dir: %w", err)
	}
	return filepath.Join(base, "twidgets"), nil
}

// Open creates dir with 0755 permissions if needed and returns a Store whose
// Put uses ttl. A zero ttl means DefaultTTL.
func Open(dir string, ttl time.Duration) (*Store, error) {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", dir, err)
	}
	return &Store{dir: dir, ttl: ttl, now: time.Now}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string { return s.dir }

// Get retrieves the raw bytes for key. Returns (nil, false) if the key is
// missing, expired, or its file is unreadable. Expired entries are removed.
func (s *Store) Get(key string) ([]byte, bool) {
	path := s.path(key)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil || e.Key != key {
		return nil, false
	}
	if s.expired(e) {
		_ = os.Remove(path)
		return nil, false
	}
	return e.Data, true
}

// Put stores value under key with the store's TTL.
func (s *Store) Put(key string, value []byte) error {
	return s.PutWithTTL(key, value, s.ttl)
}

// PutWithTTL stores value under key with a custom TTL. A negative TTL means
// the entry never expires.
func (s *Store) PutWithTTL(key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	raw, err := json.Marshal(entry{
		Key:     key,
		Created: s.now().UnixNano(),
		TTLNS:   int64(ttl),
		Data:    value,
	})
	if err != nil {
		return fmt.Errorf("cache: marshal entry for %q: %w", key, err)
	}
	if err := atomicWrite(s.path(key), raw, s.dir); err != nil {
		return fmt.Errorf("cache: write entry for %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cache: delete %q: %w", key, err)
	}
	return nil
}

// Clear removes every entry and stray temp file from the store directory.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cache: clear read dir: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(name, ".cache") || strings.HasPrefix(name, ".tmp-") {
			_ = os.Remove(filepath.Join(s.dir, name))
		}
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, hashKey(key)+".cache")
}

func (s *Store) expired(e entry) bool {
	if e.TTLNS <= 0 {
		return false
	}
	return s.now().Sub(time.Unix(0, e.Created)) > time.Duration(e.TTLNS)
}

// atomicWrite writes data to path via a temporary file and rename.
func atomicWrite(path string, data []byte, tmpDir string) error {
	tmp, err := os.CreateTemp(tmpDir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}
