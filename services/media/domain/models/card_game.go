package models

import "slices"

// CardGame is a game played with a deck. It has no price, so it never
// sits on a Shelf; it can only be picked at random.
type CardGame struct {
	Title string `json:"title"`
}

// CardGames is a RandomPicker over a fixed set of card games.
type CardGames struct {
	games []CardGame
	index IndexFunc
}

// NewCardGames returns a picker over games.
func NewCardGames(games ...CardGame) *CardGames {
	return &CardGames{games: slices.Clone(games), index: defaultIndex}
}

// WithIndex returns a copy of c that uses index to choose a game.
func (c *CardGames) WithIndex(index IndexFunc) *CardGames {
	return &CardGames{games: c.games, index: index}
}

// Len returns the number of card games available.
func (c *CardGames) Len() int {
	return len(c.games)
}

// PickRandom returns a uniformly chosen game, or false if there are none.
func (c *CardGames) PickRandom() (CardGame, bool) {
	return pickFrom(c.games, c.index)
}
