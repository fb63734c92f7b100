package service

import (
	"errors"
	"regexp"
	"strings"
)

// A record moves Pending → Assigned (code present) → Active (paid or
// manual) → Renewed (further Renewal payments). Hard deletion is an
// operator action outside this validator. Every rejection names the one
// invariant it violates; nothing here coerces data into shape.

var (
	ErrEmptyFullName    = errors.New("full name is required")
	ErrInvalidPhone     = errors.New("phone must be exactly 10 digits starting with 0")
	ErrInvalidLevel     = errors.New("level must be one of 100, 200, 300 or 400")
	ErrEmptyCode        = errors.New("membership code must not be empty")
	ErrCodeAlreadySet   = errors.New("membership code is already assigned")
	ErrRenewalNeedsCode = errors.New("membership has no code yet and cannot be renewed")
	ErrDuplicateCode    = errors.New("membership code is already taken")
)

var phonePattern = regexp.MustCompile(`^0\d{9}$`)

// ValidatePhone accepts the local mobile format only: ten digits, leading 0.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidateLevel constrains the enrollment level to the four taught levels.
// Graduate tiers are registered as 400 upstream.
func ValidateLevel(level int) error {
	switch level {
	case 100, 200, 300, 400:
		return nil
	}
	return ErrInvalidLevel
}

// ProfileUpdate carries the attributes an operator may edit in place.
// Edits are allowed from any state and never change the state.
type ProfileUpdate struct {
	FullName string
	Program  string
	Level    int
	Phone    string
}

// ValidateProfileUpdate re-checks the format and domain invariants before an
// edit is accepted.
func ValidateProfileUpdate(u ProfileUpdate) error {
	if strings.TrimSpace(u.FullName) == "" {
		return ErrEmptyFullName
	}
	if err := ValidateLevel(u.Level); err != nil {
		return err
	}
	return ValidatePhone(u.Phone)
}

// ValidateCodeAssignment gates Pending → Assigned. The code must be
// non-empty and the record must not already carry one; global uniqueness is
// the storage layer's to enforce.
func ValidateCodeAssignment(currentCode *string, newCode string) error {
	if currentCode != nil && strings.TrimSpace(*currentCode) != "" {
		return ErrCodeAlreadySet
	}
	if strings.TrimSpace(newCode) == "" {
		return ErrEmptyCode
	}
	return nil
}

// ValidateRenewal gates Assigned/Active → Renewed. A record still waiting
// for its code cannot accumulate renewal payments; a failed lookup is the
// caller's error, reported before this check.
func ValidateRenewal(currentCode *string) error {
	if currentCode == nil || strings.TrimSpace(*currentCode) == "" {
		return ErrRenewalNeedsCode
	}
	return nil
}
