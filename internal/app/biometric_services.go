package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/infrastructure/persistence"
	"github.com/sirboldilox/hrsdb/internal/pkg/logger"
)

type biometricService struct {
	store  *persistence.Store
	logger logger.Logger
}

// NewBiometricService creates a new instance of BiometricService
func NewBiometricService(store *persistence.Store, logger logger.Logger) records.BiometricService {
	return &biometricService{
		store:  store,
		logger: logger,
	}
}

// Create stages and persists a new biometric reading for a patient. Both
// foreign keys are resolved inside the unit of work, so a dangling patient
// or type id fails with ErrPatientNotFound / ErrTypeNotFound and leaves no
// partial writes.
func (s *biometricService) Create(ctx context.Context, patientID, typeID uint, value string, timestamp time.Time) (uint, error) {
	var biometric *records.Biometric

	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		patient, err := uow.Patients.GetByID(ctx, patientID)
		if err != nil {
			if errors.Is(err, records.ErrNotFound) {
				return fmt.Errorf("%w: id %d", records.ErrPatientNotFound, patientID)
			}
			return err
		}

		biometricType, err := uow.BiometricTypes.GetByID(ctx, typeID)
		if err != nil {
			if errors.Is(err, records.ErrNotFound) {
				return fmt.Errorf("%w: id %d", records.ErrTypeNotFound, typeID)
			}
			return err
		}

		biometric = patient.AddBiometric(biometricType, value, timestamp)
		return uow.Biometrics.Create(ctx, biometric)
	})
	if err != nil {
		return 0, err
	}

	return biometric.ID, nil
}

// Get retrieves a biometric record by id.
func (s *biometricService) Get(ctx context.Context, id uint) (*records.Biometric, error) {
	var biometric *records.Biometric
	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		var err error
		biometric, err = uow.Biometrics.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return biometric, nil
}

// List retrieves the biometrics for a patient, optionally restricted to a
// single type. Ordering is not guaranteed.
func (s *biometricService) List(ctx context.Context, patientID uint, typeID *uint) ([]*records.Biometric, error) {
	var biometrics []*records.Biometric
	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		var err error
		biometrics, err = uow.Biometrics.ListByPatient(ctx, patientID, typeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return biometrics, nil
}

// ListTypes retrieves the static biometric type table.
func (s *biometricService) ListTypes(ctx context.Context) ([]*records.BiometricType, error) {
	var types []*records.BiometricType
	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		var err error
		types, err = uow.BiometricTypes.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return types, nil
}
