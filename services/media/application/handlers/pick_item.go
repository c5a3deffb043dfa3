package handlers

import (
	"net/http"

	"github.com/ghuser/mediashelf/pkg/errhttp"
	appsvcs "github.com/ghuser/mediashelf/services/media/application/services"
)

// PickItemHandler handles GET /shelves/{kind}/pick requests.
type PickItemHandler struct {
	svc        *appsvcs.Services
	production bool
}

// NewPickItemHandler returns a PickItemHandler backed by the given services.
func NewPickItemHandler(svc *appsvcs.Services, production bool) *PickItemHandler {
	return &PickItemHandler{svc: svc, production: production}
}

// Execute returns one item chosen uniformly at random.
//
//	@Summary		Pick random item
//	@Description	Returns a uniformly random item from a shelf; 404 when the shelf is empty
//	@Tags			shelves
//	@Produce		json
//	@Param			kind	path		string	true	"Shelf kind"	Enums(board-games, movies, tv-shows, video-games)
//	@Success		200		{object}	ItemResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/shelves/{kind}/pick [get]
func (h *PickItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	kind, ok := shelfKind(w, r, h.production)
	if !ok {
		return
	}

	item, err := h.svc.Shelf.Pick(kind)
	if err != nil {
		errhttp.WriteError(w, err, h.production)
		return
	}

	writeItem(w, http.StatusOK, item, h.production)
}
