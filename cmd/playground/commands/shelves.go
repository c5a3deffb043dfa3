package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghuser/mediashelf/services/media/domain/models"
	"github.com/ghuser/mediashelf/services/media/infrastructure/memory"
)

func shelvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shelves",
		Short: "Fill typed shelves, describe them, encode them and pick from them",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			opts := []models.ShelfOption{}
			if idx := pickIndex(); idx != nil {
				opts = append(opts, models.WithRandom(idx))
			}

			boardGames := models.NewShelf[models.BoardGame](opts...)
			movies := models.NewShelf[models.Movie](opts...)
			videoGames := models.NewShelf[models.VideoGame](opts...)
			for _, g := range memory.SampleBoardGames() {
				boardGames.Add(g)
			}
			for _, m := range memory.SampleMovies() {
				movies.Add(m)
			}
			for _, g := range memory.SampleVideoGames() {
				videoGames.Add(g)
			}
			log.Debug("shelves filled",
				"board_games", boardGames.Len(),
				"movies", movies.Len(),
				"video_games", videoGames.Len(),
			)

			fmt.Fprintln(out, boardGames.Description())
			fmt.Fprintln(out, movies.Description())
			fmt.Fprintln(out, videoGames.Description())

			encoded, err := boardGames.EncodeItems()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(encoded))

			title := "Nothing!"
			if game, ok := videoGames.PickRandom(); ok {
				title = game.Title
			}
			fmt.Fprintf(out, "Let's play %s\n", title)

			for _, g := range boardGames.Items() {
				b, err := models.EncodeItem(g)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
			}

			fmt.Fprintf(out, "Movies cost %s and run for %s\n",
				models.TotalPrice[models.Movie](movies), models.TotalRuntime[models.Movie](movies))
			return nil
		},
	}
}
