package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/serroba/linkbox/internal/todo"
)

// TodoMemoryStore is an in-memory implementation of todo.Repository.
type TodoMemoryStore struct {
	mu     sync.RWMutex
	items  map[int64]todo.Item
	nextID int64
}

// NewTodoMemoryStore creates a new in-memory todo store.
func NewTodoMemoryStore() *TodoMemoryStore {
	return &TodoMemoryStore{
		items:  make(map[int64]todo.Item),
		nextID: 1,
	}
}

func (s *TodoMemoryStore) List(_ context.Context) ([]todo.Item, error) {
	return s.filter(func(todo.Item) bool { return true }), nil
}

func (s *TodoMemoryStore) ListComplete(_ context.Context) ([]todo.Item, error) {
	return s.filter(func(item todo.Item) bool { return item.IsComplete }), nil
}

func (s *TodoMemoryStore) Get(_ context.Context, id int64) (*todo.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, todo.ErrNotFound
	}

	return &item, nil
}

func (s *TodoMemoryStore) Create(_ context.Context, item *todo.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID
	s.nextID++
	s.items[item.ID] = *item

	return nil
}

func (s *TodoMemoryStore) Update(_ context.Context, item *todo.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return todo.ErrNotFound
	}

	s.items[item.ID] = *item

	return nil
}

func (s *TodoMemoryStore) Delete(_ context.Context, id int64) (*todo.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, todo.ErrNotFound
	}

	delete(s.items, id)

	return &item, nil
}

// filter returns matching items ordered by id.
func (s *TodoMemoryStore) filter(keep func(todo.Item) bool) []todo.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]todo.Item, 0, len(s.items))

	for _, item := range s.items {
		if keep(item) {
			out = append(out, item)
		}
	}

	slices.SortFunc(out, func(a, b todo.Item) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

var _ todo.Repository = (*TodoMemoryStore)(nil)
