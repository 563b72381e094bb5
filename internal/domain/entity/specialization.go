package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Specialization is the medical field a doctor practises
type Specialization string

const (
	SpecializationCardiologist     Specialization = "CARDIOLOGIST"
	SpecializationDermatologist    Specialization = "DERMATOLOGIST"
	SpecializationPediatrician     Specialization = "PEDIATRICIAN"
	SpecializationOrthopedic       Specialization = "ORTHOPEDIC"
	SpecializationNeurologist      Specialization = "NEUROLOGIST"
	SpecializationGeneralPhysician Specialization = "GENERAL_PHYSICIAN"
)

var ErrUnknownSpecialization = errors.New("unknown specialization")

// Specializations lists every specialization in menu order
func Specializations() []Specialization {
	return []Specialization{
		SpecializationCardiologist,
		SpecializationDermatologist,
		SpecializationPediatrician,
		SpecializationOrthopedic,
		SpecializationNeurologist,
		SpecializationGeneralPhysician,
	}
}

func (s Specialization) IsValid() bool {
	for _, known := range Specializations() {
		if s == known {
			return true
		}
	}
	return false
}

func (s Specialization) String() string {
	return string(s)
}

// ParseSpecialization accepts an enum name in any letter case
func ParseSpecialization(value string) (Specialization, error) {
	s := Specialization(strings.ToUpper(strings.TrimSpace(value)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSpecialization, value)
	}
	return s, nil
}
