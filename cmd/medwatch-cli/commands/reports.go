package commands

import (
	"encoding/json"
	"fmt"

	"github.com/medwatch-dev/medwatch/database"
	"github.com/medwatch-dev/medwatch/database/repositories"
	"github.com/spf13/cobra"
)

// NewReportsCommand prints the stored report history as JSON, ordered by id
// ascending, straight from the database file.
func NewReportsCommand() *cobra.Command {
	reportsCmd := &cobra.Command{
		Use:   "reports",
		Short: "List the stored report history",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := cmd.Flags().GetString("db-path")
			if err != nil {
				return err
			}

			db, err := database.NewConnection(dbPath)
			if err != nil {
				return fmt.Errorf("could not open database: %w", err)
			}

			if err := database.RunMigrations(db); err != nil {
				return fmt.Errorf("could not migrate database: %w", err)
			}

			reports, err := repositories.NewReportRepository(db).ListAll()
			if err != nil {
				return fmt.Errorf("could not list reports: %w", err)
			}

			out, err := json.MarshalIndent(reports, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	reportsCmd.Flags().String("db-path", "", "Path to the SQLite database file (defaults to ./medwatch.db)")

	return reportsCmd
}
