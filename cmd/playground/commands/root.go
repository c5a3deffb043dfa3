package commands

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ghuser/mediashelf/pkg/logger"
	"github.com/ghuser/mediashelf/services/media/domain/models"
)

var (
	logLevel string
	seed     uint64
	log      logger.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "playground",
		Short:         "Walk through typed media shelves and vehicles on the console",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = logger.NewWithOptions(logger.Options{
				Writer: cmd.ErrOrStderr(),
				Level:  logLevel,
				Format: logger.FormatText,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for random picks (0 = random)")

	root.AddCommand(shelvesCmd(), cardsCmd(), catalogCmd(), vehiclesCmd())
	return root
}

// pickIndex returns the random source for picks: seeded when --seed is set.
func pickIndex() models.IndexFunc {
	if seed == 0 {
		return nil
	}
	r := rand.New(rand.NewPCG(seed, seed))
	return r.IntN
}
