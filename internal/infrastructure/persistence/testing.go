//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sirboldilox/hrsdb/internal/pkg/config"
	pkgTesting "github.com/sirboldilox/hrsdb/internal/pkg/testing"
)

// TestDatabaseSettings builds settings for a throwaway test database.
// sqlite databases live under a per-test temp dir so that two connections
// to the same DSN observe the same data; postgres databases get a unique
// generated name cleaned up via t.Cleanup.
func TestDatabaseSettings(t *testing.T, dbType string) config.DatabaseSettings {
	t.Helper()

	switch dbType {
	case config.SqliteDbType:
		return config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  filepath.Join(t.TempDir(), "hrsdb_test.db"),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		t.Cleanup(func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		})
		return config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
		return config.DatabaseSettings{}
	}
}

// SetupTestStore initializes a record store against a throwaway test
// database with automatic cleanup.
func SetupTestStore(t *testing.T, dbType string) *Store {
	t.Helper()

	settings := TestDatabaseSettings(t, dbType)
	logger := pkgTesting.SetupTestLogger(t)

	store, err := NewStore(settings, logger)
	require.NoError(t, err, "Failed to create record store")

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("failed to close test store: %v", err)
		}
	})

	return store
}
