package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySelfRegistration(t *testing.T) {
	cls := Classify(ChannelSelfRegistration, "")
	assert.False(t, cls.IsManual)
	assert.True(t, cls.PaymentRequired)
	assert.Nil(t, cls.MemberCode)
}

func TestClassifySelfRegistrationIgnoresSuppliedCode(t *testing.T) {
	// The public form must never smuggle in an operator override.
	cls := Classify(ChannelSelfRegistration, "26/9999")
	assert.False(t, cls.IsManual)
	assert.True(t, cls.PaymentRequired)
	assert.Nil(t, cls.MemberCode)

	// Idempotent under repeated calls with the same input.
	assert.Equal(t, cls, Classify(ChannelSelfRegistration, "26/9999"))
}

func TestClassifyManualDigitization(t *testing.T) {
	cases := []struct {
		name     string
		override string
		wantCode *string
	}{
		{"override used verbatim", "24/500", strPtr("24/500")},
		{"override trimmed", "  24/500  ", strPtr("24/500")},
		{"empty override leaves code unset", "", nil},
		{"whitespace override leaves code unset", "   ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cls := Classify(ChannelManualDigitization, tc.override)
			assert.True(t, cls.IsManual)
			assert.False(t, cls.PaymentRequired)
			if tc.wantCode == nil {
				assert.Nil(t, cls.MemberCode)
			} else {
				assert.NotNil(t, cls.MemberCode)
				assert.Equal(t, *tc.wantCode, *cls.MemberCode)
			}
		})
	}
}

func TestClassifyManualRoundTrip(t *testing.T) {
	// Classifying again with the produced code as the override yields the
	// same code.
	first := Classify(ChannelManualDigitization, "24/500")
	assert.NotNil(t, first.MemberCode)
	second := Classify(ChannelManualDigitization, *first.MemberCode)
	assert.Equal(t, *first.MemberCode, *second.MemberCode)
}

func strPtr(s string) *string { return &s }
