package tokenstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// KV is a persistent string key/value handle scoped to one application.
type KV interface {
	// Get returns the value and whether it was present.
	Get(key string) (string, bool, error)
	// Set overwrites the value under key.
	Set(key, value string) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(key string) error
}

// MemoryKV is an in-process KV.
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemoryKV returns an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: map[string]string{}}
}

func (kv *MemoryKV) Get(key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *MemoryKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.m[key] = value
	return nil
}

func (kv *MemoryKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.m, key)
	return nil
}

// FileKV keeps one file per key in Dir.
type FileKV struct {
	Dir string
}

// NewFileKV returns a KV rooted at dir. The directory is created lazily.
func NewFileKV(dir string) *FileKV {
	return &FileKV{Dir: dir}
}

// DefaultDir returns the per-application state directory under the user's config dir.
func DefaultDir(app string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "sessionbridge", app)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sessionbridge", app)
}

func (kv *FileKV) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("bad key %q", key)
	}
	return filepath.Join(kv.Dir, key+".json"), nil
}

func (kv *FileKV) Get(key string) (string, bool, error) {
	p, err := kv.path(key)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Set writes to a temp file and renames it over the target so readers never see a torn value.
func (kv *FileKV) Set(key, value string) error {
	p, err := kv.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(kv.Dir, 0o700); err != nil {
		return err
	}
	f, err := os.CreateTemp(kv.Dir, key+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.WriteString(value); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

func (kv *FileKV) Delete(key string) error {
	p, err := kv.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
