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

type ecgService struct {
	store    *persistence.Store
	payloads records.PayloadStore
	logger   logger.Logger
}

// orphanLogger is implemented by payload store backends whose writes can
// outlive a rolled-back row create (the file backend).
type orphanLogger interface {
	LogOrphan(ecg *records.ECG)
}

// NewECGService creates a new instance of ECGService
func NewECGService(store *persistence.Store, payloads records.PayloadStore, logger logger.Logger) records.ECGService {
	return &ecgService{
		store:    store,
		payloads: payloads,
		logger:   logger,
	}
}

// Create stages and persists a new ECG recording for a patient. The sample
// payload is written through the payload store strictly before the row is
// inserted, inside the same unit of work: a failed commit may orphan a
// payload file (logged) but a committed row always resolves to its payload.
func (s *ecgService) Create(ctx context.Context, patientID uint, samplingFreq float64, timestamp time.Time, samples []float64) (uint, error) {
	var ecg *records.ECG

	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		patient, err := uow.Patients.GetByID(ctx, patientID)
		if err != nil {
			if errors.Is(err, records.ErrNotFound) {
				return fmt.Errorf("%w: id %d", records.ErrPatientNotFound, patientID)
			}
			return err
		}

		ecg = patient.AddECG(samplingFreq, timestamp)
		if err := ecg.Validate(); err != nil {
			return err
		}

		// Payload write happens-before row create, never the reverse
		if err := s.payloads.Write(ctx, ecg, samples); err != nil {
			return fmt.Errorf("failed to store ecg payload: %w", err)
		}

		return uow.ECGs.Create(ctx, ecg)
	})
	if err != nil {
		if ecg != nil {
			if ol, ok := s.payloads.(orphanLogger); ok {
				ol.LogOrphan(ecg)
			}
		}
		return 0, err
	}

	return ecg.ID, nil
}

// List retrieves the ECG recordings for a patient.
func (s *ecgService) List(ctx context.Context, patientID uint) ([]*records.ECG, error) {
	var ecgs []*records.ECG
	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		var err error
		ecgs, err = uow.ECGs.ListByPatient(ctx, patientID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ecgs, nil
}

// GetPayload resolves an ECG id to its decoded sample array. A missing row
// surfaces as ErrNotFound; an existing row whose payload cannot be read or
// decoded surfaces as ErrPayloadUnavailable.
func (s *ecgService) GetPayload(ctx context.Context, id uint) ([]float64, error) {
	var samples []float64
	err := s.store.WithUnitOfWork(ctx, func(uow *persistence.UnitOfWork) error {
		ecg, err := uow.ECGs.GetByID(ctx, id)
		if err != nil {
			return err
		}

		samples, err = s.payloads.Read(ctx, ecg)
		return err
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}
