package records

import "time"

// ECG is one electrocardiogram recording belonging to a patient. The bulk
// sample data lives outside the row: either as a file referenced through
// Data (file-path strategy) or encoded into Payload (inline strategy). The
// payload store stamps SampleCount and exactly one of the two references at
// write time, so SampleCount is always derivable from the stored payload.
type ECG struct {
	ID           uint
	PatientID    uint      `validate:"required"`
	SamplingFreq float64   `validate:"required,gt=0"`
	Timestamp    time.Time `validate:"required"`
	SampleCount  int

	// Data references the on-disk payload file (file-path strategy).
	Data *ECGData
	// Payload holds the encoded samples (inline strategy).
	Payload []byte
}

// Validate checks the ECG fields against their constraints.
func (e *ECG) Validate() error {
	return validateStruct(e)
}

// ECGData references an ECG sample file stored under the configured upload
// root. At most one ECG row refers to it. The file is written strictly
// before the row is created, so a committed row never points at a missing
// file.
type ECGData struct {
	ID   uint
	Path string `validate:"required,min=1,max=512"`
}
