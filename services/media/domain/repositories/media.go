package repositories

import (
	"context"

	"github.com/ghuser/mediashelf/services/media/domain/models"
)

// MediaRepository is a source of media items of a single variant.
// The domain layer owns this interface; infrastructure implements it.
type MediaRepository[T models.MediaItem] interface {
	// GetItems returns the current items from the source. Order is not guaranteed.
	GetItems(ctx context.Context) ([]T, error)
}
