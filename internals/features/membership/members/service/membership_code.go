package service

// AdmissionYearPrefix computes the cohort-year label used as the left
// segment of a membership code ("26/1301" → 26 from 2026). Level 100 is
// treated as admitted this cycle; every additional 100 pushes admission one
// year back, so the label stays stable regardless of when in the year the
// member registers.
//
// Callers must pass a level already vetted by ValidateLevel; the derivation
// itself does not re-check the domain.
func AdmissionYearPrefix(level, year int) int {
	return year - level/100 + 1
}
