// Package memory provides in-process implementations of the media repositories.
package memory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/ghuser/mediashelf/services/media/domain/models"
)

// CatalogRepository implements repositories.MediaRepository over a fixed
// in-memory catalog. Every GetItems call returns a freshly shuffled copy.
type CatalogRepository[T models.MediaItem] struct {
	items   []T
	shuffle func(n int, swap func(i, j int))
}

// NewCatalogRepository returns a repository serving items.
func NewCatalogRepository[T models.MediaItem](items ...T) *CatalogRepository[T] {
	return &CatalogRepository[T]{items: slices.Clone(items), shuffle: rand.Shuffle}
}

// NewVideoGameRepository returns a repository over the sample video game catalog.
func NewVideoGameRepository() *CatalogRepository[models.VideoGame] {
	return NewCatalogRepository(SampleVideoGames()...)
}

// WithShuffle returns a copy of r that orders results with shuffle.
func (r *CatalogRepository[T]) WithShuffle(shuffle func(n int, swap func(i, j int))) *CatalogRepository[T] {
	return &CatalogRepository[T]{items: r.items, shuffle: shuffle}
}

// GetItems returns a shuffled copy of the catalog.
func (r *CatalogRepository[T]) GetItems(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get catalog items: %w", err)
	}
	out := slices.Clone(r.items)
	r.shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out, nil
}
