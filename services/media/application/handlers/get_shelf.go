package handlers

import (
	"net/http"

	"github.com/ghuser/mediashelf/pkg/errhttp"
	"github.com/ghuser/mediashelf/pkg/httpx"
	appsvcs "github.com/ghuser/mediashelf/services/media/application/services"
)

// GetShelfHandler handles GET /shelves/{kind} requests.
type GetShelfHandler struct {
	svc        *appsvcs.Services
	production bool
}

// NewGetShelfHandler returns a GetShelfHandler backed by the given services.
func NewGetShelfHandler(svc *appsvcs.Services, production bool) *GetShelfHandler {
	return &GetShelfHandler{svc: svc, production: production}
}

// Execute lists a shelf with its description and totals.
//
//	@Summary		Get shelf
//	@Description	Lists every item on a shelf in insertion order, with the shelf description and totals
//	@Tags			shelves
//	@Produce		json
//	@Param			kind	path		string	true	"Shelf kind"	Enums(board-games, movies, tv-shows, video-games)
//	@Success		200		{object}	ShelfResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/shelves/{kind} [get]
func (h *GetShelfHandler) Execute(w http.ResponseWriter, r *http.Request) {
	kind, ok := shelfKind(w, r, h.production)
	if !ok {
		return
	}

	view, err := h.svc.Shelf.View(kind)
	if err != nil {
		errhttp.WriteError(w, err, h.production)
		return
	}

	httpx.JSON(w, http.StatusOK, ShelfResponse{
		Kind:           view.Kind.String(),
		Description:    view.Description,
		Count:          view.Count,
		TotalPrice:     view.TotalPrice,
		RuntimeMinutes: int(view.Runtime.Minutes()),
		Items:          view.Items,
	})
}
