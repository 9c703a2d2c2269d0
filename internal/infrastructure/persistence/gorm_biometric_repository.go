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

type gormBiometricTypeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBiometricTypeRepository creates a new GORM-based
// BiometricTypeRepository implementation.
func NewGormBiometricTypeRepository(db *gorm.DB, logger logger.Logger) records.BiometricTypeRepository {
	return &gormBiometricTypeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *gormBiometricTypeRepository) GetByID(ctx context.Context, id uint) (*records.BiometricType, error) {
	var model models.BiometricTypeModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, records.ErrNotFound
		}
		return nil, records.NewStorageError("fetch biometric type", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBiometricTypeRepository) List(ctx context.Context) ([]*records.BiometricType, error) {
	var modelList []*models.BiometricTypeModel
	if err := r.db.WithContext(ctx).Find(&modelList).Error; err != nil {
		return nil, records.NewStorageError("list biometric types", err)
	}

	domainList := make([]*records.BiometricType, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormBiometricRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBiometricRepository creates a new GORM-based BiometricRepository
// implementation.
func NewGormBiometricRepository(db *gorm.DB, logger logger.Logger) records.BiometricRepository {
	return &gormBiometricRepository{
		db:     db,
		logger: logger,
	}
}

func (r *gormBiometricRepository) Create(ctx context.Context, biometric *records.Biometric) error {
	if err := biometric.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BiometricModel{}
	model.FromDomain(biometric)

	if err := r.db.WithContext(ctx).Omit("Patient", "Type").Create(model).Error; err != nil {
		return records.NewStorageError("create biometric", err)
	}

	biometric.ID = model.ID
	r.logger.Info("Created biometric record with id ", biometric.ID)
	return nil
}

func (r *gormBiometricRepository) GetByID(ctx context.Context, id uint) (*records.Biometric, error) {
	var model models.BiometricModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, records.ErrNotFound
		}
		return nil, records.NewStorageError("fetch biometric", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBiometricRepository) ListByPatient(ctx context.Context, patientID uint, typeID *uint) ([]*records.Biometric, error) {
	dbQuery := r.db.WithContext(ctx).
		Model(&models.BiometricModel{}).
		Where("patient_id = ?", patientID)

	// Optional filter by type
	if typeID != nil {
		dbQuery = dbQuery.Where("type_id = ?", *typeID)
	}

	var modelList []*models.BiometricModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, records.NewStorageError("list biometrics", err)
	}

	domainList := make([]*records.Biometric, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
