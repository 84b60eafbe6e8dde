// Package todo defines todo items and their storage contract.
package todo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("todo item not found")

// Item is a single todo entry.
type Item struct {
	ID         int64
	Name       string
	IsComplete bool
}

// Repository stores todo items.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	ListComplete(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (*Item, error)
	// Create assigns the next id to item and stores it.
	Create(ctx context.Context, item *Item) error
	// Update replaces the name and completion state of an existing item.
	Update(ctx context.Context, item *Item) error
	// Delete removes the item and returns it.
	Delete(ctx context.Context, id int64) (*Item, error)
}
