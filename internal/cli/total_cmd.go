package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTotalCmd(app *App) *cobra.Command {
	var showZero bool

	cmd := &cobra.Command{
		Use:   "total <client-id>",
		Short: "Print a client's price breakdown and total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := app.Clients.Total(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("client %s: %w", args[0], err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "item\tqty\tunit\ttotal\t")
			for _, e := range total.Breakdown {
				if e.Total == 0 && !showZero {
					continue
				}
				fmt.Fprintf(w, "%s\t%g\t%.2f\t%.2f\t\n", e.Key, e.Quantity, e.UnitPrice, e.Total)
			}
			fmt.Fprintf(w, "TOTAL\t\t\t%.2f\t\n", total.Total)
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&showZero, "all", false, "include line items that total zero")
	return cmd
}
