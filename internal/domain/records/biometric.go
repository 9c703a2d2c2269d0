package records

import "time"

// BiometricType is a row of the mostly static reference table of known
// biometric reading types. Name is unique across all rows.
type BiometricType struct {
	ID    uint
	Name  string `validate:"required,min=1,max=255"`
	Units string `validate:"required,min=1,max=50"`
}

// Validate checks the BiometricType fields against their constraints.
func (t *BiometricType) Validate() error {
	return validateStruct(t)
}

// Biometric is one discrete reading (height, weight, blood pressure, ...)
// belonging to a patient. The value is an opaque scalar stored as text.
type Biometric struct {
	ID        uint
	PatientID uint      `validate:"required"`
	TypeID    uint      `validate:"required"`
	Value     string    `validate:"required"`
	Timestamp time.Time `validate:"required"`
}

// Validate checks the Biometric fields against their constraints.
func (b *Biometric) Validate() error {
	return validateStruct(b)
}
