package dto

// ManualMemberRequest digitizes a physical record. Payment is waived and an
// operator may supply the code printed on the old card.
type ManualMemberRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	Program      string `json:"program" validate:"required"`
	Level        int    `json:"level" validate:"required"`
	Gender       string `json:"gender" validate:"omitempty,oneof=Male Female"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	StudentID    string `json:"student_id"`
	Residence    string `json:"residence"`
	Constituency string `json:"constituency"`
	CustomID     string `json:"custom_id"`
}

// UpdateMemberRequest is the in-place profile edit from the roster table.
type UpdateMemberRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	Program      string `json:"program" validate:"required"`
	Level        int    `json:"level" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Gender       string `json:"gender" validate:"omitempty,oneof=Male Female"`
	Residence    string `json:"residence"`
	Constituency string `json:"constituency"`
}
