package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirboldilox/hrsdb/internal/pkg/serializer"
)

// AddBiometricCmd inserts a new biometric reading for a patient.
func AddBiometricCmd(cmd *cobra.Command, _ []string) error {
	patientID, err := cmd.Flags().GetUint("patient-id")
	if err != nil {
		return fmt.Errorf("invalid patient-id flag: %w", err)
	}
	typeID, err := cmd.Flags().GetUint("type-id")
	if err != nil {
		return fmt.Errorf("invalid type-id flag: %w", err)
	}
	value, err := cmd.Flags().GetString("value")
	if err != nil {
		return fmt.Errorf("invalid value flag: %w", err)
	}
	timestampFlag, err := cmd.Flags().GetString("timestamp")
	if err != nil {
		return fmt.Errorf("invalid timestamp flag: %w", err)
	}

	// Timestamp defaults to now
	timestamp := time.Now()
	if timestampFlag != "" {
		timestamp, err = serializer.ParseTime(timestampFlag)
		if err != nil {
			return err
		}
	}

	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	id, err := services.biometrics.Create(context.Background(), patientID, typeID, value, timestamp)
	if err != nil {
		return err
	}

	fmt.Printf("Created biometric %d\n", id)
	return nil
}

// ListBiometricsCmd prints the biometrics for a patient, optionally
// restricted to a single type.
func ListBiometricsCmd(cmd *cobra.Command, _ []string) error {
	patientID, err := cmd.Flags().GetUint("patient-id")
	if err != nil {
		return fmt.Errorf("invalid patient-id flag: %w", err)
	}
	typeIDFlag, err := cmd.Flags().GetUint("type-id")
	if err != nil {
		return fmt.Errorf("invalid type-id flag: %w", err)
	}

	var typeID *uint
	if cmd.Flags().Changed("type-id") {
		typeID = &typeIDFlag
	}

	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	biometrics, err := services.biometrics.List(context.Background(), patientID, typeID)
	if err != nil {
		return err
	}

	for _, biometric := range biometrics {
		if err := printRecord(biometric); err != nil {
			return err
		}
	}
	return nil
}

// ListBiometricTypesCmd prints the static biometric type table.
func ListBiometricTypesCmd(cmd *cobra.Command, _ []string) error {
	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	types, err := services.biometrics.ListTypes(context.Background())
	if err != nil {
		return err
	}

	for _, biometricType := range types {
		if err := printRecord(biometricType); err != nil {
			return err
		}
	}
	return nil
}

// InitBiometricCommands registers the biometric command group with the root command.
func InitBiometricCommands(rootCmd *cobra.Command) error {
	biometricCmd := &cobra.Command{
		Use:   "biometric",
		Short: "Manage biometric readings",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a biometric reading for a patient",
		RunE:  AddBiometricCmd,
	}
	addCmd.Flags().Uint("patient-id", 0, "Id of the patient the reading belongs to")
	addCmd.Flags().Uint("type-id", 0, "Id of the biometric type")
	addCmd.Flags().String("value", "", "The reading value")
	addCmd.Flags().String("timestamp", "", "Reading timestamp ("+serializer.CanonicalTimeFormat+"), defaults to now")
	if err := addCmd.MarkFlagRequired("patient-id"); err != nil {
		return err
	}
	if err := addCmd.MarkFlagRequired("type-id"); err != nil {
		return err
	}
	if err := addCmd.MarkFlagRequired("value"); err != nil {
		return err
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List biometric readings for a patient",
		RunE:  ListBiometricsCmd,
	}
	listCmd.Flags().Uint("patient-id", 0, "Id of the patient")
	listCmd.Flags().Uint("type-id", 0, "Optional biometric type filter")
	if err := listCmd.MarkFlagRequired("patient-id"); err != nil {
		return err
	}

	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "List the known biometric types",
		RunE:  ListBiometricTypesCmd,
	}

	biometricCmd.AddCommand(addCmd, listCmd, typesCmd)
	rootCmd.AddCommand(biometricCmd)
	return nil
}
