package models

import "math/rand/v2"

// RandomPicker hands out one thing to enjoy. The boolean is false when
// there is nothing to pick from.
type RandomPicker[T any] interface {
	PickRandom() (T, bool)
}

// IndexFunc returns a uniformly distributed index in [0, n). n is always > 0.
type IndexFunc func(n int) int

func defaultIndex(n int) int { return rand.IntN(n) }

func pickFrom[T any](items []T, index IndexFunc) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	if index == nil {
		index = defaultIndex
	}
	return items[index(len(items))], true
}
