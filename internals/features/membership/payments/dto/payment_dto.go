package dto

// RegistrationRequest is the public self-registration form. The photo
// arrives as the multipart file field "photo". Any membership code the
// client tries to smuggle in is ignored by classification.
type RegistrationRequest struct {
	FullName     string `json:"full_name" form:"full_name" validate:"required"`
	Program      string `json:"program" form:"program" validate:"required"`
	Level        int    `json:"level" form:"level" validate:"required"`
	Gender       string `json:"gender" form:"gender" validate:"omitempty,oneof=Male Female"`
	Phone        string `json:"phone" form:"phone" validate:"required"`
	Email        string `json:"email" form:"email" validate:"required,email"`
	StudentID    string `json:"student_id" form:"student_id" validate:"required"`
	Residence    string `json:"residence" form:"residence" validate:"required"`
	Constituency string `json:"constituency" form:"constituency" validate:"required"`
	Tier         string `json:"tier" form:"tier" validate:"required,oneof=standard gold"`
}

// RenewalRequest starts a renewal checkout for a resolved member.
type RenewalRequest struct {
	MemberCode string `json:"member_code" validate:"required"`
}

// CheckoutResponse is returned by both checkout endpoints.
type CheckoutResponse struct {
	OrderID   string  `json:"order_id"`
	SnapToken string  `json:"snap_token"`
	Amount    float64 `json:"amount"`
}
