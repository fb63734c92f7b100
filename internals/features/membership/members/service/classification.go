package service

import "strings"

// SubmissionChannel says where a membership submission came from.
type SubmissionChannel int

const (
	// ChannelSelfRegistration is the public, payment-gated form.
	ChannelSelfRegistration SubmissionChannel = iota
	// ChannelManualDigitization is an operator typing in a physical record.
	ChannelManualDigitization
)

// Classification is the routing decision for one submission.
type Classification struct {
	IsManual        bool
	PaymentRequired bool
	// MemberCode is nil when the storage layer must assign the code later.
	MemberCode *string
}

// Classify decides provenance and code handling for a submission.
//
// Manual digitization waives payment and may carry an operator override
// code, used verbatim after trimming. Self-registration always requires
// payment and never accepts a caller-supplied code — the code stays unset
// until the record is activated.
func Classify(channel SubmissionChannel, overrideCode string) Classification {
	if channel == ChannelManualDigitization {
		cls := Classification{IsManual: true, PaymentRequired: false}
		if code := strings.TrimSpace(overrideCode); code != "" {
			cls.MemberCode = &code
		}
		return cls
	}
	return Classification{IsManual: false, PaymentRequired: true}
}
