package checklist

import (
	"strings"

	"wristlist/internal/errors"
)

// MemoryStore keeps items in a slice for the lifetime of the process.
type MemoryStore struct {
	limits      Limits
	items       []Item
	initialized bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(limits Limits) *MemoryStore {
	return &MemoryStore{limits: limits}
}

func (s *MemoryStore) Init() error {
	s.initialized = true
	return nil
}

// Deinit keeps the items so a later Init sees them again, matching a
// store that persists across window pushes.
func (s *MemoryStore) Deinit() error {
	s.initialized = false
	return nil
}

func (s *MemoryStore) ItemCount() int {
	return len(s.items)
}

func (s *MemoryStore) CheckedCount() int {
	n := 0
	for _, it := range s.items {
		if it.IsChecked {
			n++
		}
	}
	return n
}

func (s *MemoryStore) ItemByID(id int) (Item, error) {
	if id < 0 || id >= len(s.items) {
		return Item{}, errors.NewStoreError("checklist item not found", "item_by_id", errors.ItemNotFound, nil)
	}
	return s.items[id], nil
}

func (s *MemoryStore) AddItem(name string) error {
	if !s.initialized {
		return errors.ErrStoreNotInitialized
	}
	item, err := newItem(name, len(s.items), s.limits)
	if err != nil {
		return err
	}
	s.items = append(s.items, item)
	return nil
}

func (s *MemoryStore) ToggleChecked(id int) error {
	if !s.initialized {
		return errors.ErrStoreNotInitialized
	}
	if id < 0 || id >= len(s.items) {
		return errors.NewStoreError("checklist item not found", "toggle", errors.ItemNotFound, nil)
	}
	s.items[id].IsChecked = !s.items[id].IsChecked
	return nil
}

func (s *MemoryStore) DeleteCompleted() (int, error) {
	if !s.initialized {
		return 0, errors.ErrStoreNotInitialized
	}
	kept := s.items[:0]
	for _, it := range s.items {
		if !it.IsChecked {
			kept = append(kept, it)
		}
	}
	deleted := len(s.items) - len(kept)
	s.items = kept
	return deleted, nil
}

// newItem validates a new item name against the store limits.
func newItem(name string, count int, limits Limits) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, errors.NewStoreError("empty item name", "add", errors.StoreOperationFailed, nil)
	}
	if limits.MaxItems > 0 && count >= limits.MaxItems {
		return Item{}, errors.NewStoreError("checklist is full", "add", errors.ChecklistFull, nil)
	}
	return Item{Name: truncateName(name, limits.MaxNameLength)}, nil
}
