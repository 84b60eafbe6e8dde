package handlers_test

import (
	"context"
	"errors"

	"github.com/serroba/linkbox/internal/shortener"
	"github.com/serroba/linkbox/internal/todo"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com"

// mockStore is a test double for shortener.Repository that can be configured to return errors.
type mockStore struct {
	insertErr     error
	findByCodeErr error
	inserted      []*shortener.ShortLink
}

func (m *mockStore) Insert(_ context.Context, link *shortener.ShortLink) error {
	m.inserted = append(m.inserted, link)

	return m.insertErr
}

func (m *mockStore) FindByCode(_ context.Context, code shortener.Code) (*shortener.ShortLink, error) {
	if m.findByCodeErr != nil {
		return nil, m.findByCodeErr
	}

	return &shortener.ShortLink{Code: code, TargetURL: testURL}, nil
}

// failingTodoStore fails every call with err.
type failingTodoStore struct {
	err error
}

func (f failingTodoStore) List(context.Context) ([]todo.Item, error)         { return nil, f.err }
func (f failingTodoStore) ListComplete(context.Context) ([]todo.Item, error) { return nil, f.err }
func (f failingTodoStore) Get(context.Context, int64) (*todo.Item, error)    { return nil, f.err }
func (f failingTodoStore) Create(context.Context, *todo.Item) error          { return f.err }
func (f failingTodoStore) Update(context.Context, *todo.Item) error          { return f.err }
func (f failingTodoStore) Delete(context.Context, int64) (*todo.Item, error) { return nil, f.err }
