package models

import (
	"fmt"
	"time"
)

// describerFor selects the description format for item type T.
// Video game shelves break the count down by console; every other
// shelf reports a plain count.
func describerFor[T MediaItem]() func([]T) string {
	var f any = countDescription[T]
	if _, ok := any((*T)(nil)).(*VideoGame); ok {
		f = consoleDescription
	}
	return f.(func([]T) string)
}

func countDescription[T MediaItem](items []T) string {
	return fmt.Sprintf("Collection contains %d items", len(items))
}

func consoleDescription(games []VideoGame) string {
	counts := CountByConsole(games)
	return fmt.Sprintf("This collection contains %d %s games, %d %s games and %d %s games",
		counts[ConsoleXbox], ConsoleXbox.DisplayName(),
		counts[ConsolePlayStation], ConsolePlayStation.DisplayName(),
		counts[ConsoleSwitch], ConsoleSwitch.DisplayName(),
	)
}

// CountByConsole tallies games per console.
func CountByConsole(games []VideoGame) map[Console]int {
	counts := make(map[Console]int, len(consoleCodes))
	for _, g := range games {
		counts[g.Console]++
	}
	return counts
}

// TotalPrice sums the price of every item in c.
func TotalPrice[T MediaItem](c MediaCollection[T]) Price {
	var total Price
	for _, item := range c.Items() {
		total = total.Plus(item.GetPrice())
	}
	return total
}

// TotalRuntime sums the running time of every video in c. It is only
// available on collections whose item type has a duration.
func TotalRuntime[T Video](c MediaCollection[T]) time.Duration {
	var total time.Duration
	for _, v := range c.Items() {
		total += v.GetDuration()
	}
	return total
}
