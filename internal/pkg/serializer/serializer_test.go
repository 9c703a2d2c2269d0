//go:build unit
// +build unit

package serializer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
)

func TestTimeRoundTrip(t *testing.T) {
	original := time.Date(1997, 4, 12, 13, 45, 9, 0, time.UTC)

	encoded := FormatTime(original)
	assert.Equal(t, "1997/04/12 13:45:09", encoded)

	decoded, err := ParseTime(encoded)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded), "round-trip must be lossless")
}

func TestParseTime_InvalidInput(t *testing.T) {
	tests := []string{
		"",
		"12/04/1997 00:00:00",
		"1997-04-12 00:00:00",
		"not a date",
	}

	for _, input := range tests {
		_, err := ParseTime(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, records.ErrValidation)
	}
}

func TestSerialize_Patient(t *testing.T) {
	patient := &records.Patient{
		ID:          1,
		FirstName:   "Bob",
		LastName:    "Smith",
		Gender:      records.GenderMale,
		DateOfBirth: time.Date(1997, 4, 12, 0, 0, 0, 0, time.UTC),
	}

	record, err := Serialize(patient)
	require.NoError(t, err)

	expectedKeys := []string{"id", "first_name", "last_name", "gender", "date_of_birth"}
	require.Len(t, record, len(expectedKeys))
	for i, field := range record {
		assert.Equal(t, expectedKeys[i], field.Key)
	}

	dob, ok := record.Get("date_of_birth")
	require.True(t, ok)
	assert.Equal(t, "1997/04/12 00:00:00", dob)

	gender, ok := record.Get("gender")
	require.True(t, ok)
	assert.Equal(t, 0, gender)

	_, ok = record.Get("missing")
	assert.False(t, ok)
}

func TestSerialize_ECGHidesPayload(t *testing.T) {
	ecg := &records.ECG{
		ID:           9,
		PatientID:    1,
		SamplingFreq: 256.0,
		Timestamp:    time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		SampleCount:  512,
		Data:         &records.ECGData{ID: 4, Path: "abc.csv"},
		Payload:      []byte("1\n2\n"),
	}

	record, err := Serialize(ecg)
	require.NoError(t, err)

	_, hasPath := record.Get("path")
	assert.False(t, hasPath, "storage internals must not leak")
	_, hasPayload := record.Get("payload")
	assert.False(t, hasPayload, "bulk payload is served separately")

	count, ok := record.Get("sample_count")
	require.True(t, ok)
	assert.Equal(t, 512, count)
}

func TestRecord_MarshalJSONPreservesOrder(t *testing.T) {
	biometric := &records.Biometric{
		ID:        2,
		PatientID: 1,
		TypeID:    3,
		Value:     "70",
		Timestamp: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
	}

	record, err := Serialize(biometric)
	require.NoError(t, err)

	encoded, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 2,
		"patient_id": 1,
		"type_id": 3,
		"value": "70",
		"timestamp": "2024/03/01 10:30:00"
	}`, string(encoded))

	// Field order is the declaration order, not alphabetical
	assert.Equal(t,
		`{"id":2,"patient_id":1,"type_id":3,"value":"70","timestamp":"2024/03/01 10:30:00"}`,
		string(encoded))
}

func TestSerialize_UnknownType(t *testing.T) {
	_, err := Serialize(struct{ Name string }{Name: "x"})
	require.Error(t, err)
}
