package models

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	mediadomain "github.com/ghuser/mediashelf/services/media/domain"
)

// MediaCollection is an ordered, type-homogeneous sequence of media items.
type MediaCollection[T MediaItem] interface {
	Add(item T)
	Items() []T
	Len() int
	Description() string
}

// Shelf is the standard MediaCollection. Its item type is fixed by T for
// its whole lifetime; items are only ever appended.
//
// Shelf is not safe for concurrent use.
type Shelf[T MediaItem] struct {
	items    []T
	describe func([]T) string
	index    IndexFunc
}

// ShelfOption configures a Shelf at construction.
type ShelfOption func(*shelfOptions)

type shelfOptions struct {
	index IndexFunc
}

// WithRandom replaces the index source used by PickRandom.
func WithRandom(index IndexFunc) ShelfOption {
	return func(o *shelfOptions) {
		o.index = index
	}
}

// NewShelf returns an empty Shelf. The description format is chosen here,
// once, from the static item type.
func NewShelf[T MediaItem](opts ...ShelfOption) *Shelf[T] {
	o := shelfOptions{index: defaultIndex}
	for _, opt := range opts {
		opt(&o)
	}
	return &Shelf[T]{
		describe: describerFor[T](),
		index:    o.index,
	}
}

// Add appends item to the end of the shelf.
func (s *Shelf[T]) Add(item T) {
	s.items = append(s.items, item)
}

// Len returns the number of items on the shelf.
func (s *Shelf[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in insertion order.
func (s *Shelf[T]) Items() []T {
	return slices.Clone(s.items)
}

// All iterates over the items in insertion order.
func (s *Shelf[T]) All() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// Description summarises the shelf contents.
func (s *Shelf[T]) Description() string {
	if s.describe == nil {
		s.describe = describerFor[T]()
	}
	return s.describe(s.items)
}

// PickRandom returns a uniformly chosen item, or false if the shelf is empty.
func (s *Shelf[T]) PickRandom() (T, bool) {
	return pickFrom(s.items, s.index)
}

// EncodeItems renders every item on the shelf as a JSON array.
func (s *Shelf[T]) EncodeItems() ([]byte, error) {
	items := s.items
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%w: shelf items: %w", mediadomain.ErrEncodingFailed, err)
	}
	return b, nil
}

// EncodeItem renders a single item as JSON with the item's declared field names.
func EncodeItem(item MediaItem) ([]byte, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", mediadomain.ErrEncodingFailed, item, err)
	}
	return b, nil
}
