package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentMemberID uuid.UUID `gorm:"column:payment_member_id;type:uuid;not null;index" json:"payment_member_id"`

	// Amount in currency units (GHS), not pesewas.
	PaymentAmount float64 `gorm:"column:payment_amount;type:numeric(10,2);not null" json:"payment_amount"`

	PaymentType string `gorm:"column:payment_type;type:varchar(30);not null" json:"payment_type"`

	// Gateway order reference, unique per checkout attempt.
	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(100);not null;uniqueIndex" json:"payment_order_id"`

	PaymentStatus string     `gorm:"column:payment_status;type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
