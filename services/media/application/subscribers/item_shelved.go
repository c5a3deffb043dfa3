// Package subscribers holds the media context's event handlers.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/mediashelf/pkg/app"
	"github.com/ghuser/mediashelf/pkg/logger"
	"github.com/ghuser/mediashelf/pkg/telemetry"
	domainevents "github.com/ghuser/mediashelf/services/media/domain/events"
)

const meterName = "github.com/ghuser/mediashelf/services/media"

// ItemShelvedHandler records shelved items as metrics and logs them.
type ItemShelvedHandler struct {
	log     logger.Logger
	shelved metric.Int64Counter
	size    metric.Int64Gauge
}

// NewItemShelvedHandler creates the instruments on meter.
func NewItemShelvedHandler(log logger.Logger, meter metric.Meter) (*ItemShelvedHandler, error) {
	shelved, err := meter.Int64Counter("media_items_shelved",
		metric.WithDescription("Items added to a shelf"),
	)
	if err != nil {
		return nil, fmt.Errorf("items shelved counter: %w", err)
	}
	size, err := meter.Int64Gauge("media_shelf_size",
		metric.WithDescription("Item count of a shelf after the latest add"),
	)
	if err != nil {
		return nil, fmt.Errorf("shelf size gauge: %w", err)
	}
	return &ItemShelvedHandler{log: log, shelved: shelved, size: size}, nil
}

// Handle processes one media.item_shelved message. It is idempotent apart
// from the counter, which may over-count on redelivery.
func (h *ItemShelvedHandler) Handle(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ItemShelvedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", domainevents.TopicItemShelved, err)
	}

	shelf := attribute.String("shelf", evt.Shelf.String())
	h.shelved.Add(ctx, 1, metric.WithAttributes(shelf))
	h.size.Record(ctx, int64(evt.ShelfSize), metric.WithAttributes(shelf))

	h.log.InfoContext(ctx, "item shelved",
		"event_id", evt.EventID,
		"shelf", evt.Shelf,
		"title", evt.Title,
		"shelf_size", evt.ShelfSize,
	)
	return nil
}

// Register subscribes the media handlers to the application's event bus.
// Subscriber errors are logged and reported to Sentry until ctx is done.
func Register(ctx context.Context, a *app.Application) error {
	h, err := NewItemShelvedHandler(a.Logger, otel.Meter(meterName))
	if err != nil {
		return err
	}

	errCh, err := a.EventBus.Subscribe(ctx, domainevents.TopicItemShelved, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", domainevents.TopicItemShelved,
				"error", err,
			)
			telemetry.CaptureError(ctx, err)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{domainevents.TopicItemShelved})
	return nil
}
