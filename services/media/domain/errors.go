package domain

import "errors"

// Sentinel errors for the media domain. Use errors.Is() to check these.
var (
	// ErrShelfEmpty indicates a random pick was requested from a shelf with no items.
	ErrShelfEmpty = errors.New("shelf is empty")

	// ErrUnknownShelf indicates the requested shelf kind does not exist.
	ErrUnknownShelf = errors.New("unknown shelf")

	// ErrInvalidItem indicates the item violates domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrEncodingFailed indicates an item could not be converted to JSON.
	ErrEncodingFailed = errors.New("encoding failed")

	// ErrNothingToPlay indicates a card game was requested from an empty deck.
	ErrNothingToPlay = errors.New("no card games available")
)
