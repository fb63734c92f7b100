package constants

// Member status markers.
const (
	MemberStatusPending = "Pending"
	MemberStatusActive  = "Active"
)

// Payment types written to the payments table. The strings match the
// historical records, so they are display values rather than enum tags.
const (
	PaymentTypeRegistrationStandard = "Registration (Standard)"
	PaymentTypeRegistrationGold     = "Registration (Gold)"
	PaymentTypeRenewal              = "Renewal"
)

// Payment statuses.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusSuccess = "Success"
	PaymentStatusFailed  = "Failed"
)

// Dues in GHS. The gateway is charged in pesewas (x100).
const (
	AmountRegistrationStandard = 15.00
	AmountRegistrationGold     = 50.00
	AmountRenewal              = 5.00
)
