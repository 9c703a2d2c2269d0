// Package app wires the record repositories, the unit-of-work manager and
// the payload store into the narrow request interface consumed by the
// transport layer. Every operation opens exactly one unit of work: it either
// fully succeeds and commits, or rolls back leaving zero partial state.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/infrastructure/persistence"
	"github.com/sirboldilox/hrsdb/internal/pkg/logger"
)

type patientService struct {
	store  *persistence.Store
	logger logger.Logger
}

// NewPatientService creates a new instance of PatientService
func NewPatientService(store *persistence.Store, logger logger.Logger) records.PatientService {
	return &patientService{
		store:  store,
		logger: logger,
	}
}

// Create validates and persists a new patient record, returning its
// generated id.
func (s *patientService) Create(ctx context.Context, firstName, lastName string, gender records.Gender, dateOfBirth time.Time) (uint, error) {
	patient := records.NewPatient(firstName, lastName, gender, dateOfBirth)
	if err := patient.Validate(); err != nil {
		return 0, err
	}

	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		return uow.Patients.Create(ctx, patient)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}

	return patient.ID, nil
}

// Get retrieves a patient record by id.
func (s *patientService) Get(ctx context.Context, id uint) (*records.Patient, error) {
	var patient *records.Patient
	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		var err error
		patient, err = uow.Patients.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// List retrieves all patient records.
func (s *patientService) List(ctx context.Context) ([]*records.Patient, error) {
	var patients []*records.Patient
	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		var err error
		patients, err = uow.Patients.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return patients, nil
}
