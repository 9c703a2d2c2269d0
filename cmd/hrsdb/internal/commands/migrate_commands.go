package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd connects to the configured backing store, migrates the schema
// and seeds the biometric type table. Both steps are idempotent, so running
// this against an already-initialized store is safe.
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	// NewStore already migrated and seeded; list the types as confirmation.
	types, err := services.biometrics.ListTypes(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Schema migrated, %d biometric types seeded:\n", len(types))
	for _, biometricType := range types {
		if err := printRecord(biometricType); err != nil {
			return err
		}
	}
	return nil
}

// InitMigrateCommands registers the migrate command with the root command.
func InitMigrateCommands(rootCmd *cobra.Command) error {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the record store schema and seed reference data",
		RunE:  MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)
	return nil
}
