package service

import (
	"strings"

	"meditrack/internal/domain/entity"
)

type RecommendationService interface {
	RecommendSpecialization(symptom string) (entity.Specialization, bool)
	RecommendDoctors(symptom string, doctors []*entity.Doctor) []*entity.Doctor
}

type symptomRule struct {
	keywords       []string
	specialization entity.Specialization
}

// rules are checked in order; the first keyword hit wins
var symptomRules = []symptomRule{
	{keywords: []string{"heart", "chest"}, specialization: entity.SpecializationCardiologist},
	{keywords: []string{"skin", "rash"}, specialization: entity.SpecializationDermatologist},
	{keywords: []string{"child", "pediatric"}, specialization: entity.SpecializationPediatrician},
	{keywords: []string{"bone", "joint"}, specialization: entity.SpecializationOrthopedic},
	{keywords: []string{"headache", "neuro"}, specialization: entity.SpecializationNeurologist},
}

type recommendationService struct{}

func NewRecommendationService() RecommendationService {
	return &recommendationService{}
}

// RecommendSpecialization maps a symptom description to a specialization by
// keyword. Anything unmatched goes to a general physician; blank input has
// no recommendation.
func (s *recommendationService) RecommendSpecialization(symptom string) (entity.Specialization, bool) {
	lower := strings.ToLower(strings.TrimSpace(symptom))
	if lower == "" {
		return "", false
	}

	for _, rule := range symptomRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.specialization, true
			}
		}
	}

	return entity.SpecializationGeneralPhysician, true
}

func (s *recommendationService) RecommendDoctors(symptom string, doctors []*entity.Doctor) []*entity.Doctor {
	specialization, ok := s.RecommendSpecialization(symptom)
	if !ok {
		return nil
	}

	var matched []*entity.Doctor
	for _, d := range doctors {
		if d.Specialization == specialization {
			matched = append(matched, d)
		}
	}
	return matched
}
