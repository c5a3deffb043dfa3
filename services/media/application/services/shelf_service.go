package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/mediashelf/pkg/logger"
	mediadomain "github.com/ghuser/mediashelf/services/media/domain"
	domainevents "github.com/ghuser/mediashelf/services/media/domain/events"
	"github.com/ghuser/mediashelf/services/media/domain/models"
	"github.com/ghuser/mediashelf/services/media/domain/repositories"
	domainsvcs "github.com/ghuser/mediashelf/services/media/domain/services"
)

// Publisher is the slice of the event bus the service needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// NewItem carries the fields accepted for any shelf kind. Fields that do not
// apply to the target kind are ignored.
type NewItem struct {
	Title   string
	Price   models.Price
	Minutes int
	Console models.Console
}

// ShelfView is a read snapshot of one shelf.
type ShelfView struct {
	Kind        models.ShelfKind
	Description string
	Count       int
	TotalPrice  models.Price
	// Runtime is zero for shelves whose items have no duration.
	Runtime time.Duration
	// Items is the shelf encoded as a JSON array, in insertion order.
	Items json.RawMessage
}

// ShelfService owns one in-memory shelf per kind and serializes access to them.
// Shelves themselves are not safe for concurrent use.
type ShelfService struct {
	mu         sync.RWMutex
	boardGames *models.Shelf[models.BoardGame]
	movies     *models.Shelf[models.Movie]
	tvShows    *models.Shelf[models.TVShow]
	videoGames *models.Shelf[models.VideoGame]

	videoGameSource repositories.MediaRepository[models.VideoGame]
	pub             Publisher
	log             logger.Logger
	shelfOpts       []models.ShelfOption
}

// NewShelfService returns a service with four empty shelves. pub may be nil,
// in which case no events are published.
func NewShelfService(
	videoGameSource repositories.MediaRepository[models.VideoGame],
	pub Publisher,
	log logger.Logger,
	opts ...models.ShelfOption,
) *ShelfService {
	return &ShelfService{
		boardGames:      models.NewShelf[models.BoardGame](opts...),
		movies:          models.NewShelf[models.Movie](opts...),
		tvShows:         models.NewShelf[models.TVShow](opts...),
		videoGames:      models.NewShelf[models.VideoGame](opts...),
		videoGameSource: videoGameSource,
		pub:             pub,
		log:             log,
		shelfOpts:       opts,
	}
}

// Add validates item, appends it to the shelf for kind and publishes
// ItemShelvedEvent. It returns the stored item.
func (s *ShelfService) Add(ctx context.Context, kind models.ShelfKind, in NewItem) (models.MediaItem, error) {
	item, err := newMediaItem(kind, in)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fmt.Errorf("%w: %w", mediadomain.ErrInvalidItem, err)
	}

	s.mu.Lock()
	size, err := s.appendLocked(item)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("add to %q: %w", kind, err)
	}

	s.publishShelved(ctx, kind, item, size)
	return item, nil
}

func newMediaItem(kind models.ShelfKind, in NewItem) (models.MediaItem, error) {
	switch kind {
	case models.KindBoardGames:
		return models.BoardGame{Title: in.Title, Price: in.Price}, nil
	case models.KindMovies:
		return models.Movie{Title: in.Title, Price: in.Price, Minutes: in.Minutes}, nil
	case models.KindTVShows:
		return models.TVShow{Title: in.Title, Price: in.Price, Minutes: in.Minutes}, nil
	case models.KindVideoGames:
		return models.VideoGame{Title: in.Title, Price: in.Price, Console: in.Console}, nil
	default:
		return nil, fmt.Errorf("add to %q: %w", kind, mediadomain.ErrUnknownShelf)
	}
}

// appendLocked adds item to its shelf and returns the new shelf size.
// s.mu must be held for writing.
func (s *ShelfService) appendLocked(item models.MediaItem) (int, error) {
	switch v := item.(type) {
	case models.BoardGame:
		return addTo(s.boardGames, v), nil
	case models.Movie:
		return addTo(s.movies, v), nil
	case models.TVShow:
		return addTo(s.tvShows, v), nil
	case models.VideoGame:
		return addTo(s.videoGames, v), nil
	default:
		return 0, mediadomain.ErrUnknownShelf
	}
}

// View returns the description, totals and encoded items of the shelf for kind.
func (s *ShelfService) View(kind models.ShelfKind) (ShelfView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case models.KindBoardGames:
		return viewOf(kind, s.boardGames)
	case models.KindMovies:
		v, err := viewOf(kind, s.movies)
		if err != nil {
			return ShelfView{}, err
		}
		v.Runtime = models.TotalRuntime[models.Movie](s.movies)
		return v, nil
	case models.KindTVShows:
		v, err := viewOf(kind, s.tvShows)
		if err != nil {
			return ShelfView{}, err
		}
		v.Runtime = models.TotalRuntime[models.TVShow](s.tvShows)
		return v, nil
	case models.KindVideoGames:
		return viewOf(kind, s.videoGames)
	default:
		return ShelfView{}, fmt.Errorf("view %q: %w", kind, mediadomain.ErrUnknownShelf)
	}
}

// Pick returns a uniformly random item from the shelf for kind, or
// ErrShelfEmpty when it has none.
func (s *ShelfService) Pick(kind models.ShelfKind) (models.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case models.KindBoardGames:
		return pick(kind, s.boardGames)
	case models.KindMovies:
		return pick(kind, s.movies)
	case models.KindTVShows:
		return pick(kind, s.tvShows)
	case models.KindVideoGames:
		return pick(kind, s.videoGames)
	default:
		return nil, fmt.Errorf("pick from %q: %w", kind, mediadomain.ErrUnknownShelf)
	}
}

// RefreshVideoGames replaces the video-game shelf with the current contents
// of the video game source and returns the new item count. The shelf is
// left untouched when the source fails.
func (s *ShelfService) RefreshVideoGames(ctx context.Context) (int, error) {
	games, err := s.videoGameSource.GetItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("refresh video games: %w", err)
	}

	shelf := models.NewShelf[models.VideoGame](s.shelfOpts...)
	for _, g := range games {
		if err := domainsvcs.ValidateItem(g); err != nil {
			return 0, fmt.Errorf("refresh video games: %q: %w: %w", g.Title, mediadomain.ErrInvalidItem, err)
		}
		shelf.Add(g)
	}

	s.mu.Lock()
	s.videoGames = shelf
	s.mu.Unlock()

	s.log.InfoContext(ctx, "video game shelf refreshed", "count", shelf.Len())
	return shelf.Len(), nil
}

// Seed appends items to the matching shelves without publishing events.
// Used to preload the sample catalog at startup.
func (s *ShelfService) Seed(boardGames []models.BoardGame, movies []models.Movie, tvShows []models.TVShow, videoGames []models.VideoGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seed(s.boardGames, boardGames)
	seed(s.movies, movies)
	seed(s.tvShows, tvShows)
	seed(s.videoGames, videoGames)
}

func addTo[T models.MediaItem](shelf *models.Shelf[T], item T) int {
	shelf.Add(item)
	return shelf.Len()
}

// publishShelved is best-effort: the item is already on the shelf, so a
// publish failure is logged and not returned.
func (s *ShelfService) publishShelved(ctx context.Context, kind models.ShelfKind, item models.MediaItem, size int) {
	if s.pub == nil {
		return
	}
	evt := domainevents.ItemShelvedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Shelf:      kind,
		Title:      item.GetTitle(),
		Price:      item.GetPrice(),
		ShelfSize:  size,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to encode item shelved event", "shelf", kind, "error", err)
		return
	}
	msg := message.NewMessage(evt.EventID.String(), payload)
	if err := s.pub.Publish(ctx, domainevents.TopicItemShelved, msg); err != nil {
		s.log.WarnContext(ctx, "failed to publish item shelved event", "shelf", kind, "error", err)
	}
}

func viewOf[T models.MediaItem](kind models.ShelfKind, shelf *models.Shelf[T]) (ShelfView, error) {
	items, err := shelf.EncodeItems()
	if err != nil {
		return ShelfView{}, fmt.Errorf("view %q: %w", kind, err)
	}
	return ShelfView{
		Kind:        kind,
		Description: shelf.Description(),
		Count:       shelf.Len(),
		TotalPrice:  models.TotalPrice[T](shelf),
		Items:       items,
	}, nil
}

func pick[T models.MediaItem](kind models.ShelfKind, shelf *models.Shelf[T]) (models.MediaItem, error) {
	item, ok := shelf.PickRandom()
	if !ok {
		return nil, fmt.Errorf("pick from %q: %w", kind, mediadomain.ErrShelfEmpty)
	}
	return item, nil
}

func seed[T models.MediaItem](shelf *models.Shelf[T], items []T) {
	for _, item := range items {
		shelf.Add(item)
	}
}
