package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File persists all slots to a single JSON file. Every write rewrites the
// whole document through a temp file and rename, so a reader never sees a partial file.
type File struct {
	mu    sync.RWMutex
	path  string
	items map[string]string
}

type fileSnapshot struct {
	Items map[string]string `json:"items"`
}

// NewFile creates a File storage at path, loading existing slots if the file exists
func NewFile(path string) (*File, error) {
	ret := &File{path: path, items: map[string]string{}}
	if err := ret.load(); err != nil {
		return nil, fmt.Errorf("failed to load storage %v: %w", path, err)
	}
	return ret, nil
}

// Path returns storage file location
func (f *File) Path() string {
	return f.path
}

func (f *File) GetItem(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.items[key]
	return value, ok, nil
}

func (f *File) SetItem(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.items[key]
	f.items[key] = value
	if err := f.save(); err != nil {
		if had {
			f.items[key] = prev
		} else {
			delete(f.items, key)
		}
		return err
	}
	return nil
}

func (f *File) RemoveItem(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.items[key]
	if !had {
		return nil
	}
	delete(f.items, key)
	if err := f.save(); err != nil {
		f.items[key] = prev
		return err
	}
	return nil
}

// ---- persistence ----

func (f *File) save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(fileSnapshot{Items: f.items}, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *File) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	for k, v := range snap.Items {
		f.items[k] = v
	}
	return nil
}
