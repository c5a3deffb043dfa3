package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	mediadomain "github.com/ghuser/mediashelf/services/media/domain"
	"github.com/ghuser/mediashelf/services/media/domain/models"
	"github.com/ghuser/mediashelf/services/media/infrastructure/memory"
)

func cardsCmd() *cobra.Command {
	var empty bool
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Pick a card game to play",
		RunE: func(cmd *cobra.Command, args []string) error {
			var games []models.CardGame
			if !empty {
				games = memory.SampleCardGames()
			}
			deck := models.NewCardGames(games...)
			if idx := pickIndex(); idx != nil {
				deck = deck.WithIndex(idx)
			}

			game, ok := deck.PickRandom()
			if !ok {
				log.Warn("no card games to pick from")
				return fmt.Errorf("pick card game: %w", mediadomain.ErrNothingToPlay)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "We have some cards so we'll play %s\n", game.Title)
			return nil
		},
	}
	cmd.Flags().BoolVar(&empty, "empty", false, "start with no card games")
	return cmd
}
