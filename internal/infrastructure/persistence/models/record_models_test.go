//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
)

func TestPatientModel_Conversions(t *testing.T) {
	dob := time.Date(1997, 4, 12, 0, 0, 0, 0, time.UTC)
	patient := &records.Patient{
		ID:          1,
		FirstName:   "Bob",
		LastName:    "Smith",
		Gender:      records.GenderFemale,
		DateOfBirth: dob,
	}

	model := &PatientModel{}
	model.FromDomain(patient)
	assert.Equal(t, 1, model.Gender)

	roundTripped := model.ToDomain()
	assert.Equal(t, patient, roundTripped)
}

func TestECGModel_ConversionsWithFileReference(t *testing.T) {
	timestamp := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	ecg := &records.ECG{
		ID:           9,
		PatientID:    1,
		SamplingFreq: 256.0,
		Timestamp:    timestamp,
		SampleCount:  512,
		Data:         &records.ECGData{ID: 4, Path: "abc.csv"},
	}

	model := &ECGModel{}
	model.FromDomain(ecg)

	require.NotNil(t, model.Data)
	assert.Equal(t, "abc.csv", model.Data.Path)
	require.NotNil(t, model.DataID)
	assert.Equal(t, uint(4), *model.DataID)
	assert.Empty(t, model.Payload)

	roundTripped := model.ToDomain()
	assert.Equal(t, ecg, roundTripped)
}

func TestECGModel_ConversionsWithInlinePayload(t *testing.T) {
	ecg := &records.ECG{
		ID:           9,
		PatientID:    1,
		SamplingFreq: 256.0,
		Timestamp:    time.Now(),
		SampleCount:  2,
		Payload:      []byte("1\n2\n"),
	}

	model := &ECGModel{}
	model.FromDomain(ecg)

	assert.Nil(t, model.Data)
	assert.Nil(t, model.DataID)
	assert.Equal(t, ecg.Payload, model.Payload)

	roundTripped := model.ToDomain()
	assert.Equal(t, ecg, roundTripped)
}

func TestECGModel_FromDomainUnsavedData(t *testing.T) {
	// An unsaved ECGData (zero id) must not produce a dangling DataID;
	// the id is assigned by the insert.
	ecg := &records.ECG{
		PatientID:    1,
		SamplingFreq: 256.0,
		Timestamp:    time.Now(),
		SampleCount:  1,
		Data:         &records.ECGData{Path: "fresh.csv"},
	}

	model := &ECGModel{}
	model.FromDomain(ecg)

	require.NotNil(t, model.Data)
	assert.Nil(t, model.DataID)
}
