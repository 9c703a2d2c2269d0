package records

import (
	"context"
	"time"
)

// PatientRepository defines the storage operations for Patient rows.
type PatientRepository interface {
	// Create inserts a new Patient and fills in its generated id.
	Create(ctx context.Context, patient *Patient) error
	// GetByID retrieves a Patient by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id uint) (*Patient, error)
	// List retrieves all Patients.
	List(ctx context.Context) ([]*Patient, error)
}

// BiometricTypeRepository defines the storage operations for the static
// BiometricType reference table.
type BiometricTypeRepository interface {
	// GetByID retrieves a BiometricType by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id uint) (*BiometricType, error)
	// List retrieves all BiometricTypes.
	List(ctx context.Context) ([]*BiometricType, error)
}

// BiometricRepository defines the storage operations for Biometric rows.
type BiometricRepository interface {
	// Create inserts a new Biometric and fills in its generated id.
	Create(ctx context.Context, biometric *Biometric) error
	// GetByID retrieves a Biometric by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id uint) (*Biometric, error)
	// ListByPatient retrieves the biometrics for one patient, optionally
	// restricted to a single type. Ordering is not guaranteed.
	ListByPatient(ctx context.Context, patientID uint, typeID *uint) ([]*Biometric, error)
}

// ECGRepository defines the storage operations for ECG rows.
type ECGRepository interface {
	// Create inserts a new ECG (and its ECGData reference, if any) and fills
	// in the generated ids.
	Create(ctx context.Context, ecg *ECG) error
	// GetByID retrieves an ECG with its payload reference resolved.
	// Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id uint) (*ECG, error)
	// ListByPatient retrieves the ECGs for one patient.
	ListByPatient(ctx context.Context, patientID uint) ([]*ECG, error)
}

// PayloadStore persists ECG sample arrays outside the relational row and
// resolves them back. Write must complete before the row referencing the
// payload is inserted; a failed commit may orphan a payload but a committed
// row always resolves.
type PayloadStore interface {
	// Write persists the samples and stamps ecg with its payload reference
	// and sample count.
	Write(ctx context.Context, ecg *ECG, samples []float64) error
	// Read resolves the payload reference of ecg and decodes the samples.
	// Returns ErrPayloadUnavailable if the payload is missing or corrupt.
	Read(ctx context.Context, ecg *ECG) ([]float64, error)
}

// PatientService is the patient surface of the narrow request interface
// exposed to the transport layer. Every operation runs in its own unit of
// work.
type PatientService interface {
	Create(ctx context.Context, firstName, lastName string, gender Gender, dateOfBirth time.Time) (uint, error)
	Get(ctx context.Context, id uint) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
}

// BiometricService is the biometric surface of the request interface.
type BiometricService interface {
	Create(ctx context.Context, patientID, typeID uint, value string, timestamp time.Time) (uint, error)
	Get(ctx context.Context, id uint) (*Biometric, error)
	List(ctx context.Context, patientID uint, typeID *uint) ([]*Biometric, error)
	ListTypes(ctx context.Context) ([]*BiometricType, error)
}

// ECGService is the ECG surface of the request interface.
type ECGService interface {
	Create(ctx context.Context, patientID uint, samplingFreq float64, timestamp time.Time, samples []float64) (uint, error)
	List(ctx context.Context, patientID uint) ([]*ECG, error)
	GetPayload(ctx context.Context, id uint) ([]float64, error)
}
