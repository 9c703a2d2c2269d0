package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirboldilox/hrsdb/internal/infrastructure/blobstore"
	"github.com/sirboldilox/hrsdb/internal/pkg/serializer"
)

// ImportECGCmd reads a CSV sample file and creates a new ECG recording for
// a patient.
func ImportECGCmd(cmd *cobra.Command, _ []string) error {
	patientID, err := cmd.Flags().GetUint("patient-id")
	if err != nil {
		return fmt.Errorf("invalid patient-id flag: %w", err)
	}
	samplingFreq, err := cmd.Flags().GetFloat64("sampling-freq")
	if err != nil {
		return fmt.Errorf("invalid sampling-freq flag: %w", err)
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	timestampFlag, err := cmd.Flags().GetString("timestamp")
	if err != nil {
		return fmt.Errorf("invalid timestamp flag: %w", err)
	}

	timestamp := time.Now()
	if timestampFlag != "" {
		timestamp, err = serializer.ParseTime(timestampFlag)
		if err != nil {
			return err
		}
	}

	encoded, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return fmt.Errorf("failed to read sample file %s: %w", inputFile, err)
	}
	samples, err := blobstore.DecodeSamples(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode sample file %s: %w", inputFile, err)
	}

	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	id, err := services.ecgs.Create(context.Background(), patientID, samplingFreq, timestamp, samples)
	if err != nil {
		return err
	}

	fmt.Printf("Created ecg %d (%d samples)\n", id, len(samples))
	return nil
}

// ListECGsCmd prints the ECG recordings for a patient.
func ListECGsCmd(cmd *cobra.Command, _ []string) error {
	patientID, err := cmd.Flags().GetUint("patient-id")
	if err != nil {
		return fmt.Errorf("invalid patient-id flag: %w", err)
	}

	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	ecgs, err := services.ecgs.List(context.Background(), patientID)
	if err != nil {
		return err
	}

	for _, ecg := range ecgs {
		if err := printRecord(ecg); err != nil {
			return err
		}
	}
	return nil
}

// ExportECGCmd resolves an ECG payload and writes it to a CSV file.
func ExportECGCmd(cmd *cobra.Command, _ []string) error {
	id, err := cmd.Flags().GetUint("id")
	if err != nil {
		return fmt.Errorf("invalid id flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	samples, err := services.ecgs.GetPayload(context.Background(), id)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFile, blobstore.EncodeSamples(samples), 0600); err != nil {
		return fmt.Errorf("failed to write sample file %s: %w", outputFile, err)
	}

	fmt.Printf("Exported %d samples to %s\n", len(samples), outputFile)
	return nil
}

// InitECGCommands registers the ecg command group with the root command.
func InitECGCommands(rootCmd *cobra.Command) error {
	ecgCmd := &cobra.Command{
		Use:   "ecg",
		Short: "Manage ECG recordings",
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import an ECG recording from a CSV sample file",
		RunE:  ImportECGCmd,
	}
	importCmd.Flags().Uint("patient-id", 0, "Id of the patient the recording belongs to")
	importCmd.Flags().Float64("sampling-freq", 0, "Sampling frequency in Hz")
	importCmd.Flags().String("input-file", "", "CSV file with one sample per line")
	importCmd.Flags().String("timestamp", "", "Recording timestamp ("+serializer.CanonicalTimeFormat+"), defaults to now")
	if err := importCmd.MarkFlagRequired("patient-id"); err != nil {
		return err
	}
	if err := importCmd.MarkFlagRequired("sampling-freq"); err != nil {
		return err
	}
	if err := importCmd.MarkFlagRequired("input-file"); err != nil {
		return err
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List ECG recordings for a patient",
		RunE:  ListECGsCmd,
	}
	listCmd.Flags().Uint("patient-id", 0, "Id of the patient")
	if err := listCmd.MarkFlagRequired("patient-id"); err != nil {
		return err
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export an ECG payload to a CSV sample file",
		RunE:  ExportECGCmd,
	}
	exportCmd.Flags().Uint("id", 0, "ECG id")
	exportCmd.Flags().String("output-file", "", "Destination CSV file")
	if err := exportCmd.MarkFlagRequired("id"); err != nil {
		return err
	}
	if err := exportCmd.MarkFlagRequired("output-file"); err != nil {
		return err
	}

	ecgCmd.AddCommand(importCmd, listCmd, exportCmd)
	rootCmd.AddCommand(ecgCmd)
	return nil
}
