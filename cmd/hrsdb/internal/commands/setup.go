package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirboldilox/hrsdb/internal/app"
	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/infrastructure/blobstore"
	"github.com/sirboldilox/hrsdb/internal/infrastructure/persistence"
	"github.com/sirboldilox/hrsdb/internal/pkg/config"
	"github.com/sirboldilox/hrsdb/internal/pkg/logger"
	"github.com/sirboldilox/hrsdb/internal/pkg/serializer"
)

const defaultConfigPath = "configs/hrsdb.yaml"

// serviceContext bundles everything a command needs: settings, logger,
// the record store and the services built on top of it.
type serviceContext struct {
	settings   *config.Settings
	logger     logger.Logger
	store      *persistence.Store
	patients   records.PatientService
	biometrics records.BiometricService
	ecgs       records.ECGService
}

// newServiceContext loads configuration, initializes the logger and opens
// the record store. Callers must Close it.
func newServiceContext() (*serviceContext, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	settings, err := config.InitializeConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&settings.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger: %w", err)
	}

	store, err := persistence.NewStore(settings.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}

	payloads, err := blobstore.NewPayloadStore(settings, log)
	if err != nil {
		if closeErr := store.Close(); closeErr != nil {
			log.Warn("failed to close record store: ", closeErr)
		}
		return nil, fmt.Errorf("failed to create payload store: %w", err)
	}

	return &serviceContext{
		settings:   settings,
		logger:     log,
		store:      store,
		patients:   app.NewPatientService(store, log),
		biometrics: app.NewBiometricService(store, log),
		ecgs:       app.NewECGService(store, payloads, log),
	}, nil
}

// Close releases the record store connection pool.
func (c *serviceContext) Close() {
	if err := c.store.Close(); err != nil {
		c.logger.Warn("failed to close record store: ", err)
	}
}

// printRecord serializes an entity and prints it as JSON.
func printRecord(entity any) error {
	record, err := serializer.Serialize(entity)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(encoded))
	return nil
}
