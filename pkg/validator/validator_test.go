package validator

import (
	"testing"

	"meditrack/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name           string                `json:"name" validate:"notblank"`
	Age            int                   `json:"age" validate:"gt=0"`
	Specialization entity.Specialization `json:"specialization" validate:"specialization"`
	Fee            decimal.Decimal       `json:"fee" validate:"gte=0"`
}

func validSample() sample {
	return sample{
		Name:           "Dr. Smith",
		Age:            45,
		Specialization: entity.SpecializationCardiologist,
		Fee:            decimal.NewFromInt(500),
	}
}

func TestValidate_Accepts(t *testing.T) {
	v := NewValidator()

	s := validSample()
	assert.NoError(t, v.Validate(&s))

	s.Fee = decimal.Zero
	assert.NoError(t, v.Validate(&s))
}

func TestValidate_RejectsEachField(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(s *sample)
		field   string
		message string
	}{
		{"blank name", func(s *sample) { s.Name = "   " }, "name", "name must not be blank"},
		{"zero age", func(s *sample) { s.Age = 0 }, "age", "age must be greater than 0"},
		{"unknown specialization", func(s *sample) { s.Specialization = "SURGEON" }, "specialization", "specialization must be a known specialization"},
		{"negative fee", func(s *sample) { s.Fee = decimal.NewFromInt(-1) }, "fee", "fee must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSample()
			tt.mutate(&s)

			err := v.Validate(&s)
			require.Error(t, err)

			fieldErrors := v.FieldErrors(err)
			require.Len(t, fieldErrors, 1)
			assert.Equal(t, tt.field, fieldErrors[0].Field)
			assert.Equal(t, tt.message, fieldErrors[0].Message)
			assert.Equal(t, tt.message, v.FormatValidationErrors(err)[tt.field])
		})
	}
}
