package entity

import (
	"errors"
	"strings"
)

var ErrBlankMedicalHistoryEntry = errors.New("medical history entry must not be blank")

// Patient represents a person registered at the clinic
type Patient struct {
	ID    string `gorm:"type:varchar(32);primaryKey" json:"id"`
	Name  string `gorm:"type:varchar(255);not null;index" json:"name"`
	Age   int    `gorm:"not null" json:"age"`
	Phone string `gorm:"type:varchar(50);not null" json:"phone"`

	medicalHistory []string
}

func (Patient) TableName() string {
	return "patients"
}

// SameAs reports whether both patients carry the same identity
func (p *Patient) SameAs(other *Patient) bool {
	return p != nil && other != nil && p.ID == other.ID
}

// MedicalHistory returns a copy of the history entries in insertion order
func (p *Patient) MedicalHistory() []string {
	history := make([]string, len(p.medicalHistory))
	copy(history, p.medicalHistory)
	return history
}

// AddMedicalHistoryEntry appends a free-text entry. Blank entries are rejected.
func (p *Patient) AddMedicalHistoryEntry(entry string) error {
	if strings.TrimSpace(entry) == "" {
		return ErrBlankMedicalHistoryEntry
	}
	p.medicalHistory = append(p.medicalHistory, entry)
	return nil
}

// Clone copies identity fields as-is and gives the clone its own history
// slice, so appending to either patient never shows up in the other.
func (p *Patient) Clone() *Patient {
	clone := &Patient{
		// identity and scalar fields
		ID:    p.ID,
		Name:  p.Name,
		Age:   p.Age,
		Phone: p.Phone,
	}

	// owned collections
	if p.medicalHistory != nil {
		clone.medicalHistory = make([]string, len(p.medicalHistory))
		copy(clone.medicalHistory, p.medicalHistory)
	}

	return clone
}
