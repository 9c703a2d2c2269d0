// Package blobstore persists ECG sample arrays outside the relational row.
// Two interchangeable backends implement records.PayloadStore: FileStore
// writes one CSV file per recording under a configured upload root, and
// InlineStore encodes the samples into the row itself. A deployment picks
// one backend in its configuration; there is no migration between them.
package blobstore

import (
	"bytes"
	"fmt"
	"strconv"
)

// EncodeSamples renders a sample array as CSV, one value per line.
func EncodeSamples(samples []float64) []byte {
	var buf bytes.Buffer
	for _, sample := range samples {
		buf.WriteString(strconv.FormatFloat(sample, 'g', -1, 64))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// DecodeSamples parses a CSV payload back into a sample array.
func DecodeSamples(encoded []byte) ([]float64, error) {
	samples := []float64{}
	for i, line := range bytes.Split(encoded, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		sample, err := strconv.ParseFloat(string(bytes.TrimSpace(line)), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample on line %d: %w", i+1, err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}
