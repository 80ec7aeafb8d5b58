package cli

import (
	"fmt"

	"solar_pipeline/internal/usecase"

	"github.com/spf13/cobra"
)

func newMigrateLegacyCmd(app *App) *cobra.Command {
	var (
		source       string
		deleteSource bool
	)

	cmd := &cobra.Command{
		Use:   "migrate-legacy",
		Short: "Copy legacy lead documents into clients, rewrite clients in canonical form and link legacy visits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.Migration(source).MigrateLegacy(cmd.Context(), usecase.MigrateOptions{DeleteSource: deleteSource})
			if err != nil {
				return fmt.Errorf("migrating %s: %w", source, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "copied:    %d\n", report.Copied)
			fmt.Fprintf(out, "skipped:   %d\n", report.Skipped)
			fmt.Fprintf(out, "deleted:   %d\n", report.Deleted)
			fmt.Fprintf(out, "rewritten: %d\n", report.Rewritten)
			fmt.Fprintf(out, "visits:    %d\n", report.VisitsLinked)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "leads", "legacy collection to read")
	cmd.Flags().BoolVar(&deleteSource, "delete-source", false, "delete each legacy document once it is in clients")
	return cmd
}
