// Package cli implements the solarctl operator commands.
package cli

import (
	"solar_pipeline/internal/usecase"

	"github.com/spf13/cobra"
)

// App holds the use cases the commands run against.
type App struct {
	Clients usecase.IClientUseCase
	// Migration builds the legacy migration for the named source collection.
	Migration func(source string) usecase.IMigrationUseCase
}

// NewRootCmd creates the top-level "solarctl" command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "solarctl",
		Short:         "Operator commands for the solar sales pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateLegacyCmd(app),
		newBoardCmd(app),
		newTotalCmd(app),
	)
	return root
}
