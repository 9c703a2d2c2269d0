//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/infrastructure/blobstore"
	"github.com/sirboldilox/hrsdb/internal/infrastructure/persistence"
	"github.com/sirboldilox/hrsdb/internal/pkg/config"
	pkgTesting "github.com/sirboldilox/hrsdb/internal/pkg/testing"
)

// TestServices bundles the record services against a throwaway store.
type TestServices struct {
	Store            *persistence.Store
	UploadRoot       string
	PatientService   records.PatientService
	BiometricService records.BiometricService
	ECGService       records.ECGService
}

// SetupTestServices initializes the full service stack against a throwaway
// test database, with the payload store backend selected by payloadStore.
func SetupTestServices(t *testing.T, dbType, payloadStore string) *TestServices {
	t.Helper()

	store := persistence.SetupTestStore(t, dbType)
	logger := pkgTesting.SetupTestLogger(t)
	uploadRoot := t.TempDir()

	settings := &config.Settings{
		PayloadStore: payloadStore,
		Uploads:      config.UploadSettings{Root: uploadRoot},
	}
	payloads, err := blobstore.NewPayloadStore(settings, logger)
	require.NoError(t, err, "Failed to create payload store")

	return &TestServices{
		Store:            store,
		UploadRoot:       uploadRoot,
		PatientService:   NewPatientService(store, logger),
		BiometricService: NewBiometricService(store, logger),
		ECGService:       NewECGService(store, payloads, logger),
	}
}
