//go:build integration
// +build integration

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/pkg/config"
	"github.com/sirboldilox/hrsdb/internal/pkg/serializer"
	pkgTesting "github.com/sirboldilox/hrsdb/internal/pkg/testing"
)

func TestPatientService_CreateAndGetRoundTrip(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)
	ctx := context.Background()

	dob := time.Date(1997, 4, 12, 0, 0, 0, 0, time.UTC)
	id, err := services.PatientService.Create(ctx, "Bob", "Smith", records.GenderMale, dob)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id, "first insert takes the first generated id")

	patient, err := services.PatientService.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bob", patient.FirstName)
	assert.Equal(t, "Smith", patient.LastName)
	assert.Equal(t, records.GenderMale, patient.Gender)
	assert.True(t, dob.Equal(patient.DateOfBirth))

	record, err := serializer.Serialize(patient)
	require.NoError(t, err)
	dobField, ok := record.Get("date_of_birth")
	require.True(t, ok)
	assert.Equal(t, "1997/04/12 00:00:00", dobField)
}

func TestPatientService_CreateRejectsInvalid(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)
	ctx := context.Background()

	_, err := services.PatientService.Create(ctx, "", "Smith", records.GenderMale, time.Now())
	require.ErrorIs(t, err, records.ErrValidation)

	patients, err := services.PatientService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, patients, "rejected creates must not persist")
}

func TestPatientService_GetNotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)

	_, err := services.PatientService.Get(context.Background(), 9999)
	require.ErrorIs(t, err, records.ErrNotFound)
}

func TestBiometricService_CreateAndListByType(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)
	ctx := context.Background()

	patientID, err := services.PatientService.Create(ctx, "Alice", "Jones",
		records.GenderFemale, time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	types, err := services.BiometricService.ListTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 4)

	byName := map[string]*records.BiometricType{}
	for _, biometricType := range types {
		byName[biometricType.Name] = biometricType
	}
	require.Contains(t, byName, "height")
	require.Contains(t, byName, "weight")

	now := time.Now().UTC().Truncate(time.Second)
	_, err = services.BiometricService.Create(ctx, patientID, byName["height"].ID, "180", now)
	require.NoError(t, err)
	weightID, err := services.BiometricService.Create(ctx, patientID, byName["weight"].ID, "70", now)
	require.NoError(t, err)

	all, err := services.BiometricService.List(ctx, patientID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	weightTypeID := byName["weight"].ID
	weights, err := services.BiometricService.List(ctx, patientID, &weightTypeID)
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.Equal(t, weightID, weights[0].ID)
	assert.Equal(t, "70", weights[0].Value)
	assert.True(t, now.Equal(weights[0].Timestamp))
}

func TestBiometricService_CreatePatientNotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)

	_, err := services.BiometricService.Create(context.Background(), 9999, 1, "70", time.Now())
	require.ErrorIs(t, err, records.ErrPatientNotFound)
}

func TestBiometricService_CreateTypeNotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)
	ctx := context.Background()

	patientID, err := services.PatientService.Create(ctx, "Alice", "Jones",
		records.GenderFemale, time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = services.BiometricService.Create(ctx, patientID, 999, "70", time.Now())
	require.ErrorIs(t, err, records.ErrTypeNotFound)

	// The failed create left nothing behind
	biometrics, err := services.BiometricService.List(ctx, patientID, nil)
	require.NoError(t, err)
	assert.Empty(t, biometrics)
}

func TestECGService_RoundTrip(t *testing.T) {
	for _, backend := range []string{config.PayloadStoreFile, config.PayloadStoreInline} {
		t.Run(backend, func(t *testing.T) {
			services := SetupTestServices(t, config.SqliteDbType, backend)
			ctx := context.Background()

			patientID, err := services.PatientService.Create(ctx, "Bob", "Smith",
				records.GenderMale, time.Date(1997, 4, 12, 0, 0, 0, 0, time.UTC))
			require.NoError(t, err)

			samples := pkgTesting.MakeSamples(250)
			taken := time.Now().UTC().Truncate(time.Second)
			id, err := services.ECGService.Create(ctx, patientID, 256.0, taken, samples)
			require.NoError(t, err)

			ecgs, err := services.ECGService.List(ctx, patientID)
			require.NoError(t, err)
			require.Len(t, ecgs, 1)
			assert.Equal(t, id, ecgs[0].ID)
			assert.Equal(t, 256.0, ecgs[0].SamplingFreq)
			assert.Equal(t, len(samples), ecgs[0].SampleCount)
			assert.True(t, taken.Equal(ecgs[0].Timestamp))

			decoded, err := services.ECGService.GetPayload(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, samples, decoded)
		})
	}
}

func TestECGService_FileBackendWritesUnderUploadRoot(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)
	ctx := context.Background()

	patientID, err := services.PatientService.Create(ctx, "Bob", "Smith",
		records.GenderMale, time.Date(1997, 4, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = services.ECGService.Create(ctx, patientID, 256.0, time.Now(), pkgTesting.MakeSamples(16))
	require.NoError(t, err)

	entries, err := os.ReadDir(services.UploadRoot)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".csv", filepath.Ext(entries[0].Name()))
}

func TestECGService_InlineBackendLeavesUploadRootEmpty(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreInline)
	ctx := context.Background()

	patientID, err := services.PatientService.Create(ctx, "Bob", "Smith",
		records.GenderMale, time.Date(1997, 4, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = services.ECGService.Create(ctx, patientID, 256.0, time.Now(), pkgTesting.MakeSamples(16))
	require.NoError(t, err)

	entries, err := os.ReadDir(services.UploadRoot)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestECGService_CreatePatientNotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)

	_, err := services.ECGService.Create(context.Background(), 9999, 256.0, time.Now(),
		pkgTesting.MakeSamples(16))
	require.ErrorIs(t, err, records.ErrPatientNotFound)

	// No payload file may survive a create that never reached the row insert
	entries, err := os.ReadDir(services.UploadRoot)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestECGService_CreateRejectsInvalidSamplingFreq(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)
	ctx := context.Background()

	patientID, err := services.PatientService.Create(ctx, "Bob", "Smith",
		records.GenderMale, time.Date(1997, 4, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = services.ECGService.Create(ctx, patientID, 0, time.Now(), pkgTesting.MakeSamples(16))
	require.ErrorIs(t, err, records.ErrValidation)

	ecgs, err := services.ECGService.List(ctx, patientID)
	require.NoError(t, err)
	assert.Empty(t, ecgs)
}

func TestECGService_GetPayloadErrors(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, config.PayloadStoreFile)
	ctx := context.Background()

	// A missing ECG row is a not-found, not a payload failure
	_, err := services.ECGService.GetPayload(ctx, 9999)
	require.ErrorIs(t, err, records.ErrNotFound)
	assert.NotErrorIs(t, err, records.ErrPayloadUnavailable)

	// A present row whose payload file has gone is a payload failure
	patientID, err := services.PatientService.Create(ctx, "Bob", "Smith",
		records.GenderMale, time.Date(1997, 4, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	id, err := services.ECGService.Create(ctx, patientID, 256.0, time.Now(), pkgTesting.MakeSamples(16))
	require.NoError(t, err)

	entries, err := os.ReadDir(services.UploadRoot)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.Remove(filepath.Join(services.UploadRoot, entries[0].Name())))

	_, err = services.ECGService.GetPayload(ctx, id)
	require.ErrorIs(t, err, records.ErrPayloadUnavailable)
}
