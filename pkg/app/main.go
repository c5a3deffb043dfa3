package app

import (
	"github.com/ghuser/mediashelf/pkg/config"
	"github.com/ghuser/mediashelf/pkg/events"
	"github.com/ghuser/mediashelf/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's route and subscriber registration during startup.
//
// Logging: app.Logger is backed by a trace-aware handler. Use the context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item shelved", "shelf", kind)
//	app.Logger.ErrorContext(ctx, "failed to encode shelf", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
}
