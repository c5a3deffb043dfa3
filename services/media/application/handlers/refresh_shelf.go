package handlers

import (
	"net/http"

	"github.com/ghuser/mediashelf/pkg/errhttp"
	"github.com/ghuser/mediashelf/pkg/httpx"
	appsvcs "github.com/ghuser/mediashelf/services/media/application/services"
)

// RefreshResponse is returned after the video game shelf is reloaded.
type RefreshResponse struct {
	Count int `json:"count" example:"2"`
} // @name RefreshResponse

// RefreshVideoGamesHandler handles POST /shelves/video-games/refresh requests.
type RefreshVideoGamesHandler struct {
	svc        *appsvcs.Services
	production bool
}

// NewRefreshVideoGamesHandler returns a RefreshVideoGamesHandler backed by the given services.
func NewRefreshVideoGamesHandler(svc *appsvcs.Services, production bool) *RefreshVideoGamesHandler {
	return &RefreshVideoGamesHandler{svc: svc, production: production}
}

// Execute replaces the video game shelf with the catalog contents.
//
//	@Summary		Refresh video games
//	@Description	Reloads the video game shelf from the catalog, replacing its current items
//	@Tags			shelves
//	@Produce		json
//	@Success		200	{object}	RefreshResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/shelves/video-games/refresh [post]
func (h *RefreshVideoGamesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Shelf.RefreshVideoGames(r.Context())
	if err != nil {
		errhttp.WriteError(w, err, h.production)
		return
	}
	httpx.JSON(w, http.StatusOK, RefreshResponse{Count: n})
}
