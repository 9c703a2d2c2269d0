package blobstore

import (
	"fmt"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/pkg/config"
	"github.com/sirboldilox/hrsdb/internal/pkg/logger"
)

// NewPayloadStore builds the payload store backend selected by the
// application settings.
func NewPayloadStore(settings *config.Settings, logger logger.Logger) (records.PayloadStore, error) {
	switch settings.PayloadStore {
	case config.PayloadStoreFile:
		return NewFileStore(settings.Uploads.Root, logger)
	case config.PayloadStoreInline:
		return NewInlineStore(logger), nil
	default:
		return nil, fmt.Errorf("unsupported payload store type: %s", settings.PayloadStore)
	}
}
