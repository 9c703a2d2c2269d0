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

type gormPatientRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPatientRepository creates a new GORM-based PatientRepository
// implementation bound to db (a plain connection or an open transaction).
func NewGormPatientRepository(db *gorm.DB, logger logger.Logger) records.PatientRepository {
	return &gormPatientRepository{
		db:     db,
		logger: logger,
	}
}

func (r *gormPatientRepository) Create(ctx context.Context, patient *records.Patient) error {
	// Validate domain entity before touching the store
	if err := patient.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PatientModel{}
	model.FromDomain(patient)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return records.NewStorageError("create patient", err)
	}

	patient.ID = model.ID
	r.logger.Info("Created patient record with id ", patient.ID)
	return nil
}

func (r *gormPatientRepository) GetByID(ctx context.Context, id uint) (*records.Patient, error) {
	var model models.PatientModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, records.ErrNotFound
		}
		return nil, records.NewStorageError("fetch patient", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPatientRepository) List(ctx context.Context) ([]*records.Patient, error) {
	var modelList []*models.PatientModel
	if err := r.db.WithContext(ctx).Find(&modelList).Error; err != nil {
		return nil, records.NewStorageError("list patients", err)
	}

	domainList := make([]*records.Patient, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
