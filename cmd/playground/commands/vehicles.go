package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghuser/mediashelf/services/garage/domain/models"
)

func vehiclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vehicles",
		Short: "Drive a family car, an embedded family car and a truck",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			car := models.NewFamilyCar()
			drive(out, car, models.Forward, 15*time.Second, 30)
			drive(out, car, models.Forward, 15*time.Second, 60)
			fmt.Fprintln(out, car.Details())

			embedded := models.NewEmbeddedFamilyCar()
			for _, speed := range []float64{30, 60} {
				drive(out, embedded, models.Forward, 15*time.Second, speed)
				fmt.Fprintf(out, "Current distance is %s\n", formatDistance(embedded.DistanceTraveled()))
			}
			fmt.Fprintln(out, embedded.Details())

			truck := models.NewTruck()
			truck.SetWheels(12)
			drive(out, truck, models.Backwards, 10*time.Second, 20)
			fmt.Fprintf(out, "%s with %d wheels\n", truck.Details(), truck.Wheels())
			return nil
		},
	}
}

func drive(out io.Writer, v models.Vehicle, dir models.Direction, d time.Duration, speed float64) {
	fmt.Fprintf(out, "Traveled %s\n", formatDistance(v.Move(dir, d, speed)))
}

func formatDistance(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
