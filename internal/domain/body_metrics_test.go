package domain

import (
	"errors"
	"strings"
	"testing"
)

func completeMetrics() BodyMetrics {
	return BodyMetrics{
		HeightCm:      178,
		WeightKg:      74.5,
		AgeYears:      34,
		Sex:           SexFemale,
		ActivityLevel: ActivityModerate,
		Climate:       ClimateTemperate,
	}
}

func TestBodyMetrics_Validate(t *testing.T) {
	t.Run("complete metrics pass", func(t *testing.T) {
		if err := completeMetrics().Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})

	tests := []struct {
		name        string
		mutate      func(*BodyMetrics)
		wantMissing []string
	}{
		{
			name:        "zero weight",
			mutate:      func(m *BodyMetrics) { m.WeightKg = 0 },
			wantMissing: []string{"weight_kg"},
		},
		{
			name:        "zero height",
			mutate:      func(m *BodyMetrics) { m.HeightCm = 0 },
			wantMissing: []string{"height_cm"},
		},
		{
			name:        "invalid sex",
			mutate:      func(m *BodyMetrics) { m.Sex = "unspecified" },
			wantMissing: []string{"sex"},
		},
		{
			name:        "invalid activity level",
			mutate:      func(m *BodyMetrics) { m.ActivityLevel = "athlete" },
			wantMissing: []string{"activity_level"},
		},
		{
			name: "multiple gaps reported together",
			mutate: func(m *BodyMetrics) {
				m.WeightKg = 0
				m.AgeYears = 0
				m.Climate = ""
			},
			wantMissing: []string{"weight_kg", "age_years", "climate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := completeMetrics()
			tt.mutate(&m)

			err := m.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInsufficientMetrics) {
				t.Errorf("Validate() error = %v, want ErrInsufficientMetrics", err)
			}
			for _, field := range tt.wantMissing {
				if !strings.Contains(err.Error(), field) {
					t.Errorf("error %q does not name missing field %q", err.Error(), field)
				}
			}
		})
	}
}
