package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Print the pipeline board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := app.Clients.Board(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading board: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, col := range board.Columns {
				fmt.Fprintf(w, "%s (%d)\n", col.Label, len(col.Cards))
				for _, card := range col.Cards {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%.2f\t%s\n", card.ID, card.FirstName, card.Neighborhood, card.Total, badges(card.HasBattery, card.HasTiledRoof))
				}
			}
			fmt.Fprintf(w, "total clients: %d\n", board.Count())
			return w.Flush()
		},
	}
}

func badges(battery, tiledRoof bool) string {
	switch {
	case battery && tiledRoof:
		return "[battery] [tiled roof]"
	case battery:
		return "[battery]"
	case tiledRoof:
		return "[tiled roof]"
	}
	return ""
}
