package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campus-services-client/internal/parking"
)

func parkingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parking",
		Short: "Show campus parking availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LOT\tLOCATION\tFREE\tTOTAL\t%\tLEVEL")
			for _, lot := range parking.Lots() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d%%\t%s\n",
					lot.Name, lot.Location, lot.Available, lot.Total, lot.Percent(), lot.Availability())
			}
			return w.Flush()
		},
	}
}

func mapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "List campus points of interest with coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(app.Out, "Campus center: %.4f, %.4f\n", parking.CampusLatitude, parking.CampusLongitude)
			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLACE\tLAT\tLON")
			for _, p := range parking.Places() {
				fmt.Fprintf(w, "%s\t%.4f\t%.4f\n", p.Name, p.Latitude, p.Longitude)
			}
			return w.Flush()
		},
	}
}

func healthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.API.Health(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Backend is up")
			return nil
		},
	}
}
