package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings holds the connection settings for the relational backing
// store. Name is only used by the postgres type, where the database is
// created on first connect if missing.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.Name == "" {
		return fmt.Errorf("database name is required for postgres")
	}

	return nil
}

// UploadSettings holds the filesystem location for externally stored ECG
// sample payloads (file payload store only).
type UploadSettings struct {
	Root string `mapstructure:"root" validate:"required"`
}

// Validate checks that all fields in UploadSettings are valid
func (s *UploadSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for UploadSettings: %w", err)
	}

	return nil
}

// LoggerSettings holds configuration settings for logging, including log level, type and file path
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	// Additional validation for file logger
	if s.LogType == LogTypeFile {
		if s.FilePath == "" {
			return fmt.Errorf("file path is required for file logger")
		}
		if s.MaxSize < 1 || s.MaxSize > 100 {
			return fmt.Errorf("max size must be between 1 and 100 MB")
		}
		if s.MaxBackups < 1 || s.MaxBackups > 10 {
			return fmt.Errorf("max backups must be between 1 and 10")
		}
		if s.MaxAge < 1 || s.MaxAge > 365 {
			return fmt.Errorf("max age must be between 1 and 365 days")
		}
	}

	return nil
}

// Settings is the full application configuration.
type Settings struct {
	Database     DatabaseSettings `mapstructure:"database"`
	Uploads      UploadSettings   `mapstructure:"uploads"`
	PayloadStore string           `mapstructure:"payload_store" validate:"required,oneof=file inline"`
	Logger       LoggerSettings   `mapstructure:"logger"`
}

// Validate checks the whole settings tree.
func (s *Settings) Validate() error {
	validate := validator.New()

	if err := validate.StructExcept(s, "Database", "Uploads", "Logger"); err != nil {
		return fmt.Errorf("validation failed for Settings: %w", err)
	}

	if err := s.Database.Validate(); err != nil {
		return err
	}
	if s.PayloadStore == PayloadStoreFile {
		if err := s.Uploads.Validate(); err != nil {
			return err
		}
	}
	if err := s.Logger.Validate(); err != nil {
		return err
	}

	return nil
}
