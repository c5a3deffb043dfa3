package memory

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/ghuser/mediashelf/services/media/domain/models"
	"github.com/ghuser/mediashelf/services/media/domain/repositories"
)

var _ repositories.MediaRepository[models.VideoGame] = (*CatalogRepository[models.VideoGame])(nil)

func titles[T models.MediaItem](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.GetTitle()
	}
	slices.Sort(out)
	return out
}

func TestCatalogRepository_GetItems(t *testing.T) {
	t.Run("returns every catalog item", func(t *testing.T) {
		repo := NewVideoGameRepository()
		got, err := repo.GetItems(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(titles(got), titles(SampleVideoGames())) {
			t.Fatalf("expected %v, got %v", titles(SampleVideoGames()), titles(got))
		}
	})

	t.Run("result is shuffled with the injected shuffle", func(t *testing.T) {
		reverse := func(n int, swap func(i, j int)) {
			for i := 0; i < n/2; i++ {
				swap(i, n-1-i)
			}
		}
		repo := NewCatalogRepository(
			models.BoardGame{Title: "A", Price: models.MustPrice("1")},
			models.BoardGame{Title: "B", Price: models.MustPrice("2")},
			models.BoardGame{Title: "C", Price: models.MustPrice("3")},
		).WithShuffle(reverse)

		got, err := repo.GetItems(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].Title != "C" || got[2].Title != "A" {
			t.Fatalf("expected reversed order, got %+v", got)
		}
	})

	t.Run("callers cannot mutate the catalog", func(t *testing.T) {
		repo := NewCatalogRepository(models.BoardGame{Title: "Catan", Price: models.MustPrice("40")})
		first, _ := repo.GetItems(context.Background())
		first[0].Title = "changed"

		second, _ := repo.GetItems(context.Background())
		if second[0].Title != "Catan" {
			t.Fatalf("catalog mutated: %q", second[0].Title)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := NewVideoGameRepository().GetItems(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
