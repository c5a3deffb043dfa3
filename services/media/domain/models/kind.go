package models

import (
	"fmt"

	mediadomain "github.com/ghuser/mediashelf/services/media/domain"
)

// ShelfKind names one of the shelves the service keeps, as it appears in URLs.
type ShelfKind string

const (
	KindBoardGames ShelfKind = "board-games"
	KindMovies     ShelfKind = "movies"
	KindTVShows    ShelfKind = "tv-shows"
	KindVideoGames ShelfKind = "video-games"
)

// Kinds returns every shelf kind in display order.
func Kinds() []ShelfKind {
	return []ShelfKind{KindBoardGames, KindMovies, KindTVShows, KindVideoGames}
}

// ParseShelfKind validates s. Returns ErrUnknownShelf for anything else.
func ParseShelfKind(s string) (ShelfKind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", mediadomain.ErrUnknownShelf, s)
}

func (k ShelfKind) String() string {
	return string(k)
}
