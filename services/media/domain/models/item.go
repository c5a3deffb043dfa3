package models

import "time"

// MediaItem is anything that can sit on a Shelf: a titled, priced piece of content.
type MediaItem interface {
	GetTitle() string
	GetPrice() Price
}

// Video is a MediaItem with a running time.
type Video interface {
	MediaItem
	GetDuration() time.Duration
}

// BoardGame is a tabletop game.
type BoardGame struct {
	Title string `json:"title"`
	Price Price  `json:"price"`
}

func (g BoardGame) GetTitle() string { return g.Title }
func (g BoardGame) GetPrice() Price  { return g.Price }

// Movie is a feature film. Minutes is the running time.
type Movie struct {
	Title   string `json:"title"`
	Price   Price  `json:"price"`
	Minutes int    `json:"duration_minutes"`
}

func (m Movie) GetTitle() string           { return m.Title }
func (m Movie) GetPrice() Price            { return m.Price }
func (m Movie) GetDuration() time.Duration { return time.Duration(m.Minutes) * time.Minute }

// TVShow is a series or episode. Minutes is the running time.
type TVShow struct {
	Title   string `json:"title"`
	Price   Price  `json:"price"`
	Minutes int    `json:"duration_minutes"`
}

func (s TVShow) GetTitle() string           { return s.Title }
func (s TVShow) GetPrice() Price            { return s.Price }
func (s TVShow) GetDuration() time.Duration { return time.Duration(s.Minutes) * time.Minute }

// VideoGame is a game released for a single Console.
type VideoGame struct {
	Title   string  `json:"title"`
	Price   Price   `json:"price"`
	Console Console `json:"console"`
}

func (g VideoGame) GetTitle() string { return g.Title }
func (g VideoGame) GetPrice() Price  { return g.Price }
