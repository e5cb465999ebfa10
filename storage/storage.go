package storage

import (
	"context"
	"strings"

	"github.com/viant/authsession/internal/collection"
)

// TokenKey is the slot holding the raw bearer token
const TokenKey = "token"

// Storage is a persistent key-value slot store.
type Storage interface {
	// GetItem returns the value stored under key, ok is false when the slot is absent
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	// SetItem overwrites the slot
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes the slot, removing an absent slot is not an error
	RemoveItem(ctx context.Context, key string) error
}

// Memory is an in-process Storage
type Memory struct {
	items *collection.SyncMap[string, string]
}

func (m *Memory) GetItem(_ context.Context, key string) (string, bool, error) {
	value, ok := m.items.Get(key)
	return value, ok, nil
}

func (m *Memory) SetItem(_ context.Context, key, value string) error {
	m.items.Put(key, value)
	return nil
}

func (m *Memory) RemoveItem(_ context.Context, key string) error {
	m.items.Delete(key)
	return nil
}

// Len returns number of stored slots
func (m *Memory) Len() int {
	return m.items.Len()
}

// NewMemory creates an empty in-memory storage
func NewMemory() *Memory {
	return &Memory{items: collection.NewSyncMap[string, string]()}
}

// Open returns AFS storage for scheme qualified locations (file://, mem://, s3://...),
// otherwise location is treated as a local JSON file path.
func Open(location string) (Storage, error) {
	if strings.Contains(location, "://") {
		return NewAFS(location), nil
	}
	return NewFile(location)
}
