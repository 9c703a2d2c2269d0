// Package serializer converts domain entities into transport-neutral
// ordered key/value records. It is the sole contract surfaced to any
// serialization layer; storage-engine internals never leak through it.
package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
)

// Field is one key/value pair of a serialized record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered mapping of field name to normalized value. Every
// date/time field is rendered through FormatTime so that round-tripping
// through ParseTime is lossless; all other scalars pass through unchanged.
type Record []Field

// Get returns the value for key and whether it is present.
func (r Record) Get(key string) (any, bool) {
	for _, field := range r {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// MarshalJSON renders the record as a JSON object preserving field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Serialize converts a domain entity into a Record.
func Serialize(entity any) (Record, error) {
	switch e := entity.(type) {
	case *records.Patient:
		return Record{
			{Key: "id", Value: e.ID},
			{Key: "first_name", Value: e.FirstName},
			{Key: "last_name", Value: e.LastName},
			{Key: "gender", Value: int(e.Gender)},
			{Key: "date_of_birth", Value: FormatTime(e.DateOfBirth)},
		}, nil
	case *records.BiometricType:
		return Record{
			{Key: "id", Value: e.ID},
			{Key: "name", Value: e.Name},
			{Key: "units", Value: e.Units},
		}, nil
	case *records.Biometric:
		return Record{
			{Key: "id", Value: e.ID},
			{Key: "patient_id", Value: e.PatientID},
			{Key: "type_id", Value: e.TypeID},
			{Key: "value", Value: e.Value},
			{Key: "timestamp", Value: FormatTime(e.Timestamp)},
		}, nil
	case *records.ECG:
		return Record{
			{Key: "id", Value: e.ID},
			{Key: "patient_id", Value: e.PatientID},
			{Key: "sampling_freq", Value: e.SamplingFreq},
			{Key: "timestamp", Value: FormatTime(e.Timestamp)},
			{Key: "sample_count", Value: e.SampleCount},
		}, nil
	default:
		return nil, fmt.Errorf("cannot serialize entity of type %T", entity)
	}
}
