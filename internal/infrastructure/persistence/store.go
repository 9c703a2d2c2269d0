package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/infrastructure/persistence/models"
	"github.com/sirboldilox/hrsdb/internal/pkg/config"
	"github.com/sirboldilox/hrsdb/internal/pkg/logger"
)

// defaultBiometricTypes seeds the static reference table. Seeding is
// idempotent: names already present are left untouched.
var defaultBiometricTypes = []models.BiometricTypeModel{
	{Name: "height", Units: "cm"},
	{Name: "weight", Units: "kg"},
	{Name: "blood_pressure", Units: "mmHg"},
	{Name: "ecg", Units: "mV"},
}

// Store owns the backing-store connection pool for its lifetime. It runs
// schema migration and reference-table seeding on startup and hands out
// unit-of-work scopes. Re-pointing the store at a different backing store
// (Reconnect) is a rare administrative operation serialized against all
// in-flight units of work.
type Store struct {
	mu     sync.RWMutex
	db     *gorm.DB
	logger logger.Logger
}

// UnitOfWork is the handle passed to a unit-of-work body. The repositories
// it exposes are bound to one open transaction: everything staged through
// them commits or rolls back as a single atomic group. It deliberately has
// no way to open a nested unit of work.
type UnitOfWork struct {
	Patients       records.PatientRepository
	BiometricTypes records.BiometricTypeRepository
	Biometrics     records.BiometricRepository
	ECGs           records.ECGRepository
}

// NewStore connects to the configured backing store, migrates the schema
// and seeds the biometric type table. Both steps are idempotent and safe
// against an already-initialized store.
func NewStore(settings config.DatabaseSettings, logger logger.Logger) (*Store, error) {
	db, err := NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	if err := initSchema(db); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("Record store initialized (", settings.Type, ")")
	return &Store{
		db:     db,
		logger: logger,
	}, nil
}

// initSchema migrates all record tables and seeds the static biometric
// type table.
func initSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.PatientModel{},
		&models.BiometricTypeModel{},
		&models.BiometricModel{},
		&models.ECGDataModel{},
		&models.ECGModel{},
	)
	if err != nil {
		return records.NewStorageError("migrate schema", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, seed := range defaultBiometricTypes {
			var model models.BiometricTypeModel
			err := tx.Where(models.BiometricTypeModel{Name: seed.Name}).
				Attrs(models.BiometricTypeModel{Units: seed.Units}).
				FirstOrCreate(&model).Error
			if err != nil {
				return records.NewStorageError("seed biometric types", err)
			}
		}
		return nil
	})
}

// WithUnitOfWork runs fn inside one transaction scope. On a nil return the
// staged writes commit; on error or panic everything rolls back. The
// connection is released on every exit path. This is the sole transaction
// boundary: callers never commit or roll back directly.
func (s *Store) WithUnitOfWork(ctx context.Context, fn func(uow *UnitOfWork) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return records.NewStorageError("unit of work", errors.New("store is closed"))
	}

	var fnErr error
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		uow := &UnitOfWork{
			Patients:       NewGormPatientRepository(tx, s.logger),
			BiometricTypes: NewGormBiometricTypeRepository(tx, s.logger),
			Biometrics:     NewGormBiometricRepository(tx, s.logger),
			ECGs:           NewGormECGRepository(tx, s.logger),
		}
		fnErr = fn(uow)
		return fnErr
	})
	if txErr != nil {
		// An error from fn propagates as-is; a begin or commit failure is
		// the backing store's fault and classified accordingly.
		if fnErr != nil {
			return txErr
		}
		return records.NewStorageError("unit of work", txErr)
	}
	return nil
}

// Reconnect re-points the store at a different backing store. The existing
// connection pool is drained and closed before the new one is established;
// in-flight units of work finish first because they hold the read lock.
func (s *Store) Reconnect(settings config.DatabaseSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if err := CloseDB(s.db); err != nil {
			return fmt.Errorf("failed to close existing connection: %w", err)
		}
		s.db = nil
	}

	db, err := NewDBConnection(settings)
	if err != nil {
		return fmt.Errorf("failed to create database connection: %w", err)
	}

	if err := initSchema(db); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	s.db = db
	s.logger.Info("Record store re-pointed (", settings.Type, ")")
	return nil
}

// Close releases the backing connection pool. The store is unusable
// afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := CloseDB(s.db)
	s.db = nil
	return err
}
