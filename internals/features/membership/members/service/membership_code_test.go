package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmissionYearPrefix(t *testing.T) {
	cases := []struct {
		name  string
		level int
		year  int
		want  int
	}{
		{"level 100 admitted this cycle", 100, 2026, 2026},
		{"level 200 admitted last year", 200, 2026, 2025},
		{"level 300", 300, 2026, 2024},
		{"level 400 admitted three years back", 400, 2026, 2023},
		{"formula holds across years", 200, 2030, 2029},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AdmissionYearPrefix(tc.level, tc.year))
		})
	}
}

func TestAdmissionYearPrefixFormula(t *testing.T) {
	// prefix(L, Y) = Y - L/100 + 1 for every valid level.
	for _, level := range []int{100, 200, 300, 400} {
		for _, year := range []int{2024, 2025, 2026} {
			assert.Equal(t, year-level/100+1, AdmissionYearPrefix(level, year))
		}
	}
}
