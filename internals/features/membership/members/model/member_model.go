package model

import (
	"time"

	"github.com/google/uuid"
)

type MemberModel struct {
	MemberID uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`

	// Human-facing membership code ("26/1301"). NULL until the record is
	// activated and the database assigns one, or until an operator supplies
	// an override during manual digitization.
	MemberCode *string `gorm:"column:member_code;type:varchar(20);uniqueIndex" json:"member_code,omitempty"`

	MemberFullName     string  `gorm:"column:member_full_name;type:varchar(120);not null" json:"member_full_name"`
	MemberProgram      string  `gorm:"column:member_program;type:varchar(120)" json:"member_program"`
	MemberLevel        int     `gorm:"column:member_level;not null" json:"member_level"`
	MemberGender       string  `gorm:"column:member_gender;type:varchar(10)" json:"member_gender"`
	MemberPhone        string  `gorm:"column:member_phone;type:varchar(10)" json:"member_phone"`
	MemberEmail        *string `gorm:"column:member_email;type:varchar(120)" json:"member_email,omitempty"`
	MemberStudentID    string  `gorm:"column:member_student_id;type:varchar(30)" json:"member_student_id"`
	MemberResidence    string  `gorm:"column:member_residence;type:varchar(120)" json:"member_residence"`
	MemberConstituency string  `gorm:"column:member_constituency;type:varchar(120)" json:"member_constituency"`
	MemberPassportURL  *string `gorm:"column:member_passport_url;type:text" json:"member_passport_url,omitempty"`

	// Cohort-year label, stored redundantly for display and sorting.
	MemberAdmissionYearPrefix int `gorm:"column:member_admission_year_prefix;not null" json:"member_admission_year_prefix"`

	// true = digitized from a physical record (payment waived).
	MemberIsManual bool `gorm:"column:member_is_manual;not null;default:false" json:"member_is_manual"`

	MemberStatus string `gorm:"column:member_status;type:varchar(20);not null;default:'Pending'" json:"member_status"`

	MemberCreatedAt time.Time `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
}

func (MemberModel) TableName() string {
	return "members"
}
