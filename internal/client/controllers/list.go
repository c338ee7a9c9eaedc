package controllers

import (
	"context"

	"github.com/dmitrijs2005/cmskeeper/internal/logging"
)

// ListController owns one screen's resource collection. The collection is
// created on mount, discarded on Reset, and never shared across screens.
// Local mutations are applied only after the server confirms them, so the
// visible list cannot drift ahead of server truth.
type ListController[T any] struct {
	name   string
	list   func(ctx context.Context) ([]T, error)
	remove func(ctx context.Context, id int64) error
	id     func(T) int64
	ui     UI
	logger logging.Logger

	items    []T
	loading  bool
	deleting bool
	epoch    int
}

// NewListController wires a controller over the resource's list and delete
// operations. name is the singular resource name used in prompts.
func NewListController[T any](
	name string,
	list func(ctx context.Context) ([]T, error),
	remove func(ctx context.Context, id int64) error,
	id func(T) int64,
	ui UI,
	logger logging.Logger,
) *ListController[T] {
	return &ListController[T]{name: name, list: list, remove: remove, id: id, ui: ui, logger: logger}
}

// Load fetches the collection. On failure the collection is left empty and
// the error is logged, not surfaced: the screen renders its empty state
// instead of crashing.
func (c *ListController[T]) Load(ctx context.Context) {
	c.loading = true
	ep := c.epoch

	items, err := c.list(ctx)

	if ep != c.epoch {
		// The screen was torn down while the request was in flight.
		return
	}
	c.loading = false
	if err != nil {
		c.logger.Error(ctx, "failed to load "+c.name+" list", "err", err)
		c.items = nil
		return
	}
	c.items = items
}

// Delete asks for confirmation, calls the server, and removes the item from
// the local collection only once the server has confirmed. On failure the
// collection is untouched and a non-blocking alert is raised.
func (c *ListController[T]) Delete(ctx context.Context, id int64) {
	if c.deleting {
		return
	}
	if !c.ui.Confirm("Are you sure you want to delete this " + c.name + "?") {
		return
	}

	c.deleting = true
	ep := c.epoch

	err := c.remove(ctx, id)

	if ep != c.epoch {
		return
	}
	c.deleting = false
	if err != nil {
		c.ui.Alert("Failed to delete " + c.name)
		return
	}

	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Prepend inserts a freshly created item at the head of the collection
// (newest-first ordering, matching the server's list order).
func (c *ListController[T]) Prepend(item T) {
	c.items = append([]T{item}, c.items...)
}

// Items returns the current collection.
func (c *ListController[T]) Items() []T { return c.items }

// Loading reports whether the initial fetch is still in flight.
func (c *ListController[T]) Loading() bool { return c.loading }

// Busy reports whether a delete is in flight; the front-end withholds the
// delete trigger while true.
func (c *ListController[T]) Busy() bool { return c.deleting }

// Reset discards the collection when the screen unmounts. Any response that
// resolves afterwards is dropped instead of mutating discarded state.
func (c *ListController[T]) Reset() {
	c.epoch++
	c.items = nil
	c.loading = false
	c.deleting = false
}
