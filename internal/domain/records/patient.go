package records

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Gender of a patient. The numeric encoding is part of the external contract.
type Gender int

// Gender values
const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

// Patient entity. Fields are immutable after creation; there is no update
// path in this core.
type Patient struct {
	ID          uint
	FirstName   string    `validate:"required,min=1,max=255"`
	LastName    string    `validate:"required,min=1,max=255"`
	Gender      Gender    `validate:"oneof=0 1"`
	DateOfBirth time.Time `validate:"required"`
}

// NewPatient constructs an unsaved Patient record.
func NewPatient(firstName, lastName string, gender Gender, dateOfBirth time.Time) *Patient {
	return &Patient{
		FirstName:   firstName,
		LastName:    lastName,
		Gender:      gender,
		DateOfBirth: dateOfBirth,
	}
}

// Validate checks the Patient fields against their constraints.
func (p *Patient) Validate() error {
	return validateStruct(p)
}

// AddBiometric stages a new biometric reading owned by this patient. The
// biometric type must already be resolved by the caller inside the same unit
// of work, so that a dangling type id fails before any write.
func (p *Patient) AddBiometric(biometricType *BiometricType, value string, timestamp time.Time) *Biometric {
	return &Biometric{
		PatientID: p.ID,
		TypeID:    biometricType.ID,
		Value:     value,
		Timestamp: timestamp,
	}
}

// AddECG stages a new ECG recording owned by this patient. The sample payload
// is attached by the payload store before the row is persisted.
func (p *Patient) AddECG(samplingFreq float64, timestamp time.Time) *ECG {
	return &ECG{
		PatientID:    p.ID,
		SamplingFreq: samplingFreq,
		Timestamp:    timestamp,
	}
}

// validateStruct runs validator/v10 over an entity and folds field errors
// into a single ErrValidation-wrapped error.
func validateStruct(entity any) error {
	validate := validator.New()

	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", ErrValidation, messages)
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
