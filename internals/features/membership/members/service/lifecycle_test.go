package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"0241234567", true},
		{"0551112222", true},
		{"241234567", false},  // no leading zero
		{"024123456", false},  // nine digits
		{"02412345678", false}, // eleven digits
		{"024123456a", false},
		{"", false},
		{"+233241234567", false},
	}
	for _, tc := range cases {
		err := ValidatePhone(tc.phone)
		if tc.ok {
			assert.NoError(t, err, tc.phone)
		} else {
			assert.ErrorIs(t, err, ErrInvalidPhone, tc.phone)
		}
	}
}

func TestValidateLevel(t *testing.T) {
	for _, lvl := range []int{100, 200, 300, 400} {
		assert.NoError(t, ValidateLevel(lvl))
	}
	for _, lvl := range []int{0, 50, 150, 500, -100} {
		assert.ErrorIs(t, ValidateLevel(lvl), ErrInvalidLevel)
	}
}

func TestValidateProfileUpdate(t *testing.T) {
	valid := ProfileUpdate{FullName: "Ama Mensah", Program: "B.Ed Social Sciences", Level: 200, Phone: "0551112222"}
	assert.NoError(t, ValidateProfileUpdate(valid))

	t.Run("empty name", func(t *testing.T) {
		u := valid
		u.FullName = "   "
		assert.ErrorIs(t, ValidateProfileUpdate(u), ErrEmptyFullName)
	})
	t.Run("bad level", func(t *testing.T) {
		u := valid
		u.Level = 250
		assert.ErrorIs(t, ValidateProfileUpdate(u), ErrInvalidLevel)
	})
	t.Run("bad phone reported, never coerced", func(t *testing.T) {
		u := valid
		u.Phone = "55111222"
		assert.ErrorIs(t, ValidateProfileUpdate(u), ErrInvalidPhone)
	})
}

func TestValidateCodeAssignment(t *testing.T) {
	assert.NoError(t, ValidateCodeAssignment(nil, "26/1301"))

	empty := ""
	assert.NoError(t, ValidateCodeAssignment(&empty, "26/1301"))

	assigned := "26/1300"
	assert.ErrorIs(t, ValidateCodeAssignment(&assigned, "26/1301"), ErrCodeAlreadySet)
	assert.ErrorIs(t, ValidateCodeAssignment(nil, "   "), ErrEmptyCode)
}

func TestValidateRenewal(t *testing.T) {
	code := "24/500"
	assert.NoError(t, ValidateRenewal(&code))

	assert.ErrorIs(t, ValidateRenewal(nil), ErrRenewalNeedsCode)
	blank := "  "
	assert.ErrorIs(t, ValidateRenewal(&blank), ErrRenewalNeedsCode)
}

func TestRegistrationScenario(t *testing.T) {
	// Level-200 student in 2026 with a valid phone: accepted, prefix 2025,
	// provenance self, code unset pending assignment.
	assert.NoError(t, ValidatePhone("0551112222"))
	assert.NoError(t, ValidateLevel(200))
	assert.Equal(t, 2025, AdmissionYearPrefix(200, 2026))

	cls := Classify(ChannelSelfRegistration, "")
	assert.False(t, cls.IsManual)
	assert.True(t, cls.PaymentRequired)
	assert.Nil(t, cls.MemberCode)
}
