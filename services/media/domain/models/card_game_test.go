package models

import "testing"

func TestCardGames_PickRandom(t *testing.T) {
	t.Run("empty deck returns false", func(t *testing.T) {
		if game, ok := NewCardGames().PickRandom(); ok {
			t.Fatalf("expected no pick, got %+v", game)
		}
	})

	t.Run("picks a member", func(t *testing.T) {
		deck := NewCardGames(CardGame{Title: "Bridge"}, CardGame{Title: "Solitaire"})
		for range 50 {
			game, ok := deck.PickRandom()
			if !ok {
				t.Fatal("expected a pick")
			}
			if game.Title != "Bridge" && game.Title != "Solitaire" {
				t.Fatalf("unexpected pick %q", game.Title)
			}
		}
	})

	t.Run("deterministic index", func(t *testing.T) {
		deck := NewCardGames(CardGame{Title: "Bridge"}, CardGame{Title: "Solitaire"}).
			WithIndex(func(int) int { return 0 })
		game, _ := deck.PickRandom()
		if game.Title != "Bridge" {
			t.Fatalf("expected Bridge, got %q", game.Title)
		}
	})

	t.Run("satisfies RandomPicker", func(t *testing.T) {
		var _ RandomPicker[CardGame] = NewCardGames()
		var _ RandomPicker[Movie] = NewShelf[Movie]()
		var _ MediaCollection[Movie] = NewShelf[Movie]()
	})
}

func TestParseShelfKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseShelfKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseShelfKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseShelfKind("vinyl"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
