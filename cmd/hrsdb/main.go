// Package main is the entry point for the hrsdb administrative CLI.
// It initializes the root command and registers the record command groups
// (migrate, patient, biometric, ecg), then executes the command-line
// interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/sirboldilox/hrsdb/cmd/hrsdb/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "hrsdb",
		Short: "Health record store administration tool",
		Long: `hrsdb is a command-line tool for administering the health record store.
It migrates and seeds the relational schema and provides out-of-band access
to patient, biometric and ECG records through the same storage core the
transport layer uses.

Configuration is read from the YAML file named by CONFIG_PATH
(default configs/hrsdb.yaml), with HRSDB_* environment overrides.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitPatientCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize patient commands: %w", err)
	}

	if err := commands.InitBiometricCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize biometric commands: %w", err)
	}

	if err := commands.InitECGCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize ecg commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
