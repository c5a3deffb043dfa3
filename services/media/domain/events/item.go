package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/mediashelf/services/media/domain/models"
)

// TopicItemShelved is the Watermill topic published when an item is added to a shelf.
const TopicItemShelved = "media.item_shelved"

// ItemShelvedEvent is published after an item is appended to a shelf.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemShelved).
type ItemShelvedEvent struct {
	EventID    uuid.UUID        `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int              `json:"version"`  // Schema version; increment on breaking changes
	Shelf      models.ShelfKind `json:"shelf"`
	Title      string           `json:"title"`
	Price      models.Price     `json:"price"`
	ShelfSize  int              `json:"shelf_size"` // Item count after the append
	OccurredAt time.Time        `json:"occurred_at"`
}
