// Package services contains stateless domain services for the media bounded context.
// They enforce shelving rules on domain types and never touch infrastructure.
package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghuser/mediashelf/services/media/domain/models"
)

const maxTitleLength = 255

// ValidateTitle enforces the rules every shelved title must follow:
//   - 1 to 255 characters
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}

	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return fmt.Errorf("title must not exceed %d characters, got %d", maxTitleLength, n)
	}

	if title != strings.TrimSpace(title) {
		return fmt.Errorf("title must not have leading or trailing whitespace")
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return fmt.Errorf("title must not contain control characters")
		}
	}

	if strings.Contains(title, "  ") {
		return fmt.Errorf("title must not contain consecutive spaces")
	}

	return nil
}

// ValidateItem checks the shared title and price rules and then the rules
// specific to the item's variant.
func ValidateItem(item models.MediaItem) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if err := ValidateTitle(item.GetTitle()); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}

	if item.GetPrice().IsNegative() {
		return fmt.Errorf("price must not be negative")
	}

	switch v := item.(type) {
	case models.Movie:
		if v.Minutes <= 0 {
			return fmt.Errorf("movie duration must be positive")
		}
	case models.TVShow:
		if v.Minutes <= 0 {
			return fmt.Errorf("tv show duration must be positive")
		}
	case models.VideoGame:
		if !v.Console.Valid() {
			return fmt.Errorf("video game console must be one of xbox, playstation, switch")
		}
	}

	return nil
}
