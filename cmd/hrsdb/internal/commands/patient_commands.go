package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/pkg/serializer"
)

// CreatePatientCmd inserts a new patient record and prints its generated id.
func CreatePatientCmd(cmd *cobra.Command, _ []string) error {
	firstName, err := cmd.Flags().GetString("first-name")
	if err != nil {
		return fmt.Errorf("invalid first-name flag: %w", err)
	}
	lastName, err := cmd.Flags().GetString("last-name")
	if err != nil {
		return fmt.Errorf("invalid last-name flag: %w", err)
	}
	gender, err := cmd.Flags().GetInt("gender")
	if err != nil {
		return fmt.Errorf("invalid gender flag: %w", err)
	}
	dob, err := cmd.Flags().GetString("date-of-birth")
	if err != nil {
		return fmt.Errorf("invalid date-of-birth flag: %w", err)
	}

	dateOfBirth, err := serializer.ParseTime(dob)
	if err != nil {
		return err
	}

	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	id, err := services.patients.Create(context.Background(), firstName, lastName, records.Gender(gender), dateOfBirth)
	if err != nil {
		return err
	}

	fmt.Printf("Created patient %d\n", id)
	return nil
}

// GetPatientCmd fetches a patient record by id and prints it.
func GetPatientCmd(cmd *cobra.Command, _ []string) error {
	id, err := cmd.Flags().GetUint("id")
	if err != nil {
		return fmt.Errorf("invalid id flag: %w", err)
	}

	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	patient, err := services.patients.Get(context.Background(), id)
	if err != nil {
		return err
	}

	return printRecord(patient)
}

// ListPatientsCmd prints all patient records.
func ListPatientsCmd(cmd *cobra.Command, _ []string) error {
	services, err := newServiceContext()
	if err != nil {
		return err
	}
	defer services.Close()

	patients, err := services.patients.List(context.Background())
	if err != nil {
		return err
	}

	for _, patient := range patients {
		if err := printRecord(patient); err != nil {
			return err
		}
	}
	return nil
}

// InitPatientCommands registers the patient command group with the root command.
func InitPatientCommands(rootCmd *cobra.Command) error {
	patientCmd := &cobra.Command{
		Use:   "patient",
		Short: "Manage patient records",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new patient record",
		RunE:  CreatePatientCmd,
	}
	createCmd.Flags().String("first-name", "", "First name of the patient")
	createCmd.Flags().String("last-name", "", "Last name of the patient")
	createCmd.Flags().Int("gender", 0, "Gender of the patient: male(0) female(1)")
	createCmd.Flags().String("date-of-birth", "", "Date of birth ("+serializer.CanonicalTimeFormat+")")
	if err := createCmd.MarkFlagRequired("first-name"); err != nil {
		return err
	}
	if err := createCmd.MarkFlagRequired("last-name"); err != nil {
		return err
	}
	if err := createCmd.MarkFlagRequired("date-of-birth"); err != nil {
		return err
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a patient record by id",
		RunE:  GetPatientCmd,
	}
	getCmd.Flags().Uint("id", 0, "Patient id")
	if err := getCmd.MarkFlagRequired("id"); err != nil {
		return err
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all patient records",
		RunE:  ListPatientsCmd,
	}

	patientCmd.AddCommand(createCmd, getCmd, listCmd)
	rootCmd.AddCommand(patientCmd)
	return nil
}
