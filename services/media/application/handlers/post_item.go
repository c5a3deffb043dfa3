package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/mediashelf/pkg/errhttp"
	pkgvalidator "github.com/ghuser/mediashelf/pkg/validator"
	appsvcs "github.com/ghuser/mediashelf/services/media/application/services"
	mediadomain "github.com/ghuser/mediashelf/services/media/domain"
	"github.com/ghuser/mediashelf/services/media/domain/models"
)

// CreateItemRequest is the request body for POST /shelves/{kind}/items.
// duration_minutes applies to movies and tv-shows, console to video-games.
type CreateItemRequest struct {
	Title           string  `json:"title"            validate:"required,min=1,max=255"                    example:"The Bourne Identity"`
	Price           float64 `json:"price"            validate:"gte=0"                                     example:"3.99"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gt=0"                            example:"113"`
	Console         string  `json:"console"          validate:"omitempty,oneof=xbox playstation switch" example:"xbox"`
} // @name CreateItemRequest

// PostItemHandler handles POST /shelves/{kind}/items requests.
type PostItemHandler struct {
	svc        *appsvcs.Services
	production bool
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, production bool) *PostItemHandler {
	return &PostItemHandler{svc: svc, production: production}
}

// Execute appends an item to a shelf.
//
//	@Summary		Add item
//	@Description	Appends an item to the end of a shelf
//	@Tags			shelves
//	@Accept			json
//	@Produce		json
//	@Param			kind	path		string				true	"Shelf kind"	Enums(board-games, movies, tv-shows, video-games)
//	@Param			request	body		CreateItemRequest	true	"Item to shelve"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shelves/{kind}/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	kind, ok := shelfKind(w, r, h.production)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	in, err := req.toNewItem()
	if err != nil {
		errhttp.WriteError(w, err, h.production)
		return
	}

	item, err := h.svc.Shelf.Add(r.Context(), kind, in)
	if err != nil {
		errhttp.WriteError(w, err, h.production)
		return
	}

	writeItem(w, http.StatusCreated, item, h.production)
}

func (req *CreateItemRequest) toNewItem() (appsvcs.NewItem, error) {
	price, err := models.PriceFromFloat(req.Price)
	if err != nil {
		return appsvcs.NewItem{}, fmt.Errorf("%w: %w", mediadomain.ErrInvalidItem, err)
	}
	in := appsvcs.NewItem{
		Title:   req.Title,
		Price:   price,
		Minutes: req.DurationMinutes,
	}
	if req.Console != "" {
		if in.Console, err = models.ParseConsole(req.Console); err != nil {
			return appsvcs.NewItem{}, fmt.Errorf("%w: %w", mediadomain.ErrInvalidItem, err)
		}
	}
	return in, nil
}
