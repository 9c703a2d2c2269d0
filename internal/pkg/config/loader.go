package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// InitializeConfig loads the application settings from the YAML file at
// path, applying environment variable overrides with the HRSDB_ prefix
// (HRSDB_DATABASE_DSN overrides database.dsn and so on).
func InitializeConfig(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("HRSDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults that hold for a development deployment
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "hrsdb.db")
	v.SetDefault("payload_store", PayloadStoreFile)
	v.SetDefault("uploads.root", "uploads")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &settings, nil
}
