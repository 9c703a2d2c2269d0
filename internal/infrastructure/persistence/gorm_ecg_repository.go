package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/infrastructure/persistence/models"
	"github.com/sirboldilox/hrsdb/internal/pkg/logger"
)

type gormECGRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormECGRepository creates a new GORM-based ECGRepository implementation.
func NewGormECGRepository(db *gorm.DB, logger logger.Logger) records.ECGRepository {
	return &gormECGRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the ECG row together with its ECGData reference, if the
// payload store attached one. The payload itself is already on disk (or
// encoded inline) by the time this runs; only row state is at stake here.
func (r *gormECGRepository) Create(ctx context.Context, ecg *records.ECG) error {
	if err := ecg.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ECGModel{}
	model.FromDomain(ecg)

	if err := r.db.WithContext(ctx).Omit("Patient").Create(model).Error; err != nil {
		return records.NewStorageError("create ecg", err)
	}

	ecg.ID = model.ID
	if model.Data != nil && ecg.Data != nil {
		ecg.Data.ID = model.Data.ID
	}

	r.logger.Info("Created ecg record with id ", ecg.ID)
	return nil
}

func (r *gormECGRepository) GetByID(ctx context.Context, id uint) (*records.ECG, error) {
	var model models.ECGModel
	if err := r.db.WithContext(ctx).Preload("Data").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, records.ErrNotFound
		}
		return nil, records.NewStorageError("fetch ecg", err)
	}
	return model.ToDomain(), nil
}

func (r *gormECGRepository) ListByPatient(ctx context.Context, patientID uint) ([]*records.ECG, error) {
	var modelList []*models.ECGModel
	err := r.db.WithContext(ctx).
		Preload("Data").
		Where("patient_id = ?", patientID).
		Find(&modelList).Error
	if err != nil {
		return nil, records.NewStorageError("list ecgs", err)
	}

	domainList := make([]*records.ECG, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
