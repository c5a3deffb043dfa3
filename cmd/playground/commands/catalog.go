package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghuser/mediashelf/services/media/domain/models"
	"github.com/ghuser/mediashelf/services/media/domain/repositories"
	"github.com/ghuser/mediashelf/services/media/infrastructure/memory"
)

func catalogCmd() *cobra.Command {
	var refreshes int
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the video game catalog, reloading it the given number of times",
		RunE: func(cmd *cobra.Command, args []string) error {
			var repo repositories.MediaRepository[models.VideoGame] = memory.NewVideoGameRepository()
			out := cmd.OutOrStdout()

			for i := 0; i <= refreshes; i++ {
				games, err := repo.GetItems(cmd.Context())
				if err != nil {
					return err
				}
				shelf := models.NewShelf[models.VideoGame]()
				for _, g := range games {
					shelf.Add(g)
				}
				log.Info("catalog loaded", "load", i+1, "count", shelf.Len())

				for _, g := range shelf.All() {
					fmt.Fprintln(out, g.Title)
				}
				fmt.Fprintln(out, shelf.Description())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&refreshes, "refresh", 0, "number of extra reloads")
	return cmd
}
