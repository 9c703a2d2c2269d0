package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/pkg/logger"
)

const payloadFileExt = ".csv"

// FileStore persists ECG payloads as CSV files under an upload root,
// referenced from the ECG row through ECGData. The file is written before
// the referencing row is created; if the row-level commit then fails the
// orphaned file is logged and tolerated, but a committed row never
// references a missing file.
type FileStore struct {
	root   string
	logger logger.Logger
}

// NewFileStore creates a FileStore rooted at root, creating the directory
// if needed.
func NewFileStore(root string, logger logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(root, 0750); err != nil {
		return nil, fmt.Errorf("failed to create upload root %s: %w", root, err)
	}
	return &FileStore{
		root:   root,
		logger: logger,
	}, nil
}

// Write encodes the samples to a freshly named file under the upload root
// and stamps ecg with the file reference and sample count.
func (s *FileStore) Write(_ context.Context, ecg *records.ECG, samples []float64) error {
	fileName := uuid.NewString() + payloadFileExt

	fullPath := filepath.Join(s.root, fileName)
	if err := os.WriteFile(fullPath, EncodeSamples(samples), 0600); err != nil {
		return fmt.Errorf("failed to write payload file %s: %w", fullPath, err)
	}

	ecg.SampleCount = len(samples)
	ecg.Data = &records.ECGData{Path: fileName}

	s.logger.Info("Wrote ecg payload file ", fileName, " (", len(samples), " samples)")
	return nil
}

// Read resolves the file reference of ecg and decodes the samples.
func (s *FileStore) Read(_ context.Context, ecg *records.ECG) ([]float64, error) {
	if ecg.Data == nil || ecg.Data.Path == "" {
		return nil, fmt.Errorf("%w: ecg %d has no payload reference", records.ErrPayloadUnavailable, ecg.ID)
	}

	fullPath := filepath.Join(s.root, filepath.Clean(ecg.Data.Path))
	encoded, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", records.ErrPayloadUnavailable, ecg.Data.Path, err)
	}

	samples, err := DecodeSamples(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", records.ErrPayloadUnavailable, ecg.Data.Path, err)
	}

	if len(samples) != ecg.SampleCount {
		return nil, fmt.Errorf("%w: %s holds %d samples, row expects %d",
			records.ErrPayloadUnavailable, ecg.Data.Path, len(samples), ecg.SampleCount)
	}

	return samples, nil
}

// LogOrphan records a payload file whose row-level commit failed. The file
// is left in place.
func (s *FileStore) LogOrphan(ecg *records.ECG) {
	if ecg.Data != nil && ecg.Data.Path != "" {
		s.logger.Warn("Orphaned ecg payload file after rollback: ", ecg.Data.Path)
	}
}
