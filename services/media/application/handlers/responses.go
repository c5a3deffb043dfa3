package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/mediashelf/pkg/errhttp"
	"github.com/ghuser/mediashelf/pkg/httpx"
	"github.com/ghuser/mediashelf/services/media/domain/models"
)

// ItemResponse documents the JSON shape of a shelved item. Fields that do
// not apply to the item's kind are absent.
type ItemResponse struct {
	Title           string  `json:"title"                      example:"Catan"`
	Price           float64 `json:"price"                      example:"40"`
	DurationMinutes int     `json:"duration_minutes,omitempty" example:"113"`
	Console         string  `json:"console,omitempty"          example:"xbox" enums:"xbox,playstation,switch"`
} // @name ItemResponse

// ShelfResponse is returned by GET /shelves/{kind}.
type ShelfResponse struct {
	Kind           string          `json:"kind"                      example:"movies"`
	Description    string          `json:"description"               example:"Collection contains 3 items"`
	Count          int             `json:"count"                     example:"3"`
	TotalPrice     models.Price    `json:"total_price"               swaggertype:"number" example:"41.97"`
	RuntimeMinutes int             `json:"runtime_minutes,omitempty" example:"456"`
	Items          json.RawMessage `json:"items"                     swaggertype:"array,object"`
} // @name ShelfResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"unknown shelf"`
} // @name ErrorResponse

// shelfKind parses the {kind} path parameter, writing a 404 when it is unknown.
func shelfKind(w http.ResponseWriter, r *http.Request, production bool) (models.ShelfKind, bool) {
	kind, err := models.ParseShelfKind(chi.URLParam(r, "kind"))
	if err != nil {
		errhttp.WriteError(w, err, production)
		return "", false
	}
	return kind, true
}

// writeItem encodes a single media item with the given status.
func writeItem(w http.ResponseWriter, status int, item models.MediaItem, production bool) {
	body, err := models.EncodeItem(item)
	if err != nil {
		errhttp.WriteError(w, err, production)
		return
	}
	httpx.RawJSON(w, status, body)
}
