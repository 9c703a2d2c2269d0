package blobstore

import (
	"context"
	"fmt"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
	"github.com/sirboldilox/hrsdb/internal/pkg/logger"
)

// InlineStore encodes ECG payloads into the row itself. The payload shares
// the fate of the row: a rolled-back create leaves nothing behind, so there
// is no orphan case for this backend.
type InlineStore struct {
	logger logger.Logger
}

// NewInlineStore creates an InlineStore.
func NewInlineStore(logger logger.Logger) *InlineStore {
	return &InlineStore{logger: logger}
}

// Write encodes the samples into ecg's inline payload column and stamps the
// sample count.
func (s *InlineStore) Write(_ context.Context, ecg *records.ECG, samples []float64) error {
	ecg.Payload = EncodeSamples(samples)
	ecg.SampleCount = len(samples)
	return nil
}

// Read decodes the inline payload of ecg.
func (s *InlineStore) Read(_ context.Context, ecg *records.ECG) ([]float64, error) {
	if len(ecg.Payload) == 0 && ecg.SampleCount > 0 {
		return nil, fmt.Errorf("%w: ecg %d has no inline payload", records.ErrPayloadUnavailable, ecg.ID)
	}

	samples, err := DecodeSamples(ecg.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding inline payload of ecg %d: %v", records.ErrPayloadUnavailable, ecg.ID, err)
	}

	if len(samples) != ecg.SampleCount {
		return nil, fmt.Errorf("%w: inline payload of ecg %d holds %d samples, row expects %d",
			records.ErrPayloadUnavailable, ecg.ID, len(samples), ecg.SampleCount)
	}

	return samples, nil
}
