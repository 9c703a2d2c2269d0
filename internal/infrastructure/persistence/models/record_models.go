// Package models holds the GORM database models for the record store
// (infrastructure concern). Domain entities never carry gorm tags; the
// converters here are the only crossing point.
package models

import (
	"time"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
)

// PatientModel is the GORM database model for patients
type PatientModel struct {
	ID          uint      `gorm:"primaryKey"`
	FirstName   string    `gorm:"not null;type:varchar(255)"`
	LastName    string    `gorm:"not null;index;type:varchar(255)"`
	Gender      int       `gorm:"not null"`
	DateOfBirth time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PatientModel) TableName() string {
	return "patients"
}

// ToDomain converts GORM model to domain entity
func (m *PatientModel) ToDomain() *records.Patient {
	return &records.Patient{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Gender:      records.Gender(m.Gender),
		DateOfBirth: m.DateOfBirth,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PatientModel) FromDomain(p *records.Patient) {
	m.ID = p.ID
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.Gender = int(p.Gender)
	m.DateOfBirth = p.DateOfBirth
}

// BiometricTypeModel is the GORM database model for the static biometric
// type reference table
type BiometricTypeModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Units string `gorm:"not null;type:varchar(50)"`
}

// TableName specifies the table name for GORM
func (BiometricTypeModel) TableName() string {
	return "biometric_types"
}

// ToDomain converts GORM model to domain entity
func (m *BiometricTypeModel) ToDomain() *records.BiometricType {
	return &records.BiometricType{
		ID:    m.ID,
		Name:  m.Name,
		Units: m.Units,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BiometricTypeModel) FromDomain(t *records.BiometricType) {
	m.ID = t.ID
	m.Name = t.Name
	m.Units = t.Units
}

// BiometricModel is the GORM database model for biometric readings
type BiometricModel struct {
	ID        uint      `gorm:"primaryKey"`
	PatientID uint      `gorm:"not null;index"`
	TypeID    uint      `gorm:"not null;index"`
	Value     string    `gorm:"not null;type:text"`
	Timestamp time.Time `gorm:"not null"`

	Patient PatientModel       `gorm:"foreignKey:PatientID"`
	Type    BiometricTypeModel `gorm:"foreignKey:TypeID"`
}

// TableName specifies the table name for GORM
func (BiometricModel) TableName() string {
	return "biometrics"
}

// ToDomain converts GORM model to domain entity
func (m *BiometricModel) ToDomain() *records.Biometric {
	return &records.Biometric{
		ID:        m.ID,
		PatientID: m.PatientID,
		TypeID:    m.TypeID,
		Value:     m.Value,
		Timestamp: m.Timestamp,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BiometricModel) FromDomain(b *records.Biometric) {
	m.ID = b.ID
	m.PatientID = b.PatientID
	m.TypeID = b.TypeID
	m.Value = b.Value
	m.Timestamp = b.Timestamp
}

// ECGModel is the GORM database model for ECG recordings. Exactly one of
// DataID (file-path payload) or Payload (inline payload) is set, depending
// on the payload store the deployment was created with.
type ECGModel struct {
	ID           uint      `gorm:"primaryKey"`
	PatientID    uint      `gorm:"not null;index"`
	SamplingFreq float64   `gorm:"not null"`
	Timestamp    time.Time `gorm:"not null"`
	SampleCount  int       `gorm:"not null"`
	DataID       *uint     `gorm:"index"`
	Payload      []byte

	Patient PatientModel  `gorm:"foreignKey:PatientID"`
	Data    *ECGDataModel `gorm:"foreignKey:DataID"`
}

// TableName specifies the table name for GORM
func (ECGModel) TableName() string {
	return "ecgs"
}

// ToDomain converts GORM model to domain entity
func (m *ECGModel) ToDomain() *records.ECG {
	ecg := &records.ECG{
		ID:           m.ID,
		PatientID:    m.PatientID,
		SamplingFreq: m.SamplingFreq,
		Timestamp:    m.Timestamp,
		SampleCount:  m.SampleCount,
		Payload:      m.Payload,
	}
	if m.Data != nil {
		ecg.Data = m.Data.ToDomain()
	}
	return ecg
}

// FromDomain converts domain entity to GORM model
func (m *ECGModel) FromDomain(e *records.ECG) {
	m.ID = e.ID
	m.PatientID = e.PatientID
	m.SamplingFreq = e.SamplingFreq
	m.Timestamp = e.Timestamp
	m.SampleCount = e.SampleCount
	m.Payload = e.Payload
	if e.Data != nil {
		data := &ECGDataModel{}
		data.FromDomain(e.Data)
		m.Data = data
		if e.Data.ID != 0 {
			m.DataID = &e.Data.ID
		}
	}
}

// ECGDataModel is the GORM database model for ECG payload file references
type ECGDataModel struct {
	ID   uint   `gorm:"primaryKey"`
	Path string `gorm:"not null;type:varchar(512)"`
}

// TableName specifies the table name for GORM
func (ECGDataModel) TableName() string {
	return "ecg_data"
}

// ToDomain converts GORM model to domain entity
func (m *ECGDataModel) ToDomain() *records.ECGData {
	return &records.ECGData{
		ID:   m.ID,
		Path: m.Path,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ECGDataModel) FromDomain(d *records.ECGData) {
	m.ID = d.ID
	m.Path = d.Path
}
