package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// EmailOutboxModel is the transactional outbox for member emails. Rows are
// written in the same transaction that records a successful payment, so a
// crashed SMTP relay can never lose or duplicate a welcome email, and the
// request path never waits on mail delivery.
type EmailOutboxModel struct {
	OutboxID          uuid.UUID  `gorm:"column:outbox_id;type:uuid;default:gen_random_uuid();primaryKey" json:"outbox_id"`
	OutboxMemberID    *uuid.UUID `gorm:"column:outbox_member_id;type:uuid;index" json:"outbox_member_id,omitempty"`
	OutboxRecipient   string     `gorm:"column:outbox_recipient;type:varchar(120);not null" json:"outbox_recipient"`
	OutboxSubject     string     `gorm:"column:outbox_subject;type:varchar(200);not null" json:"outbox_subject"`
	OutboxBody        string     `gorm:"column:outbox_body;type:text;not null" json:"outbox_body"`
	OutboxStatus      string     `gorm:"column:outbox_status;type:varchar(20);not null;default:'pending';index" json:"outbox_status"`
	OutboxAttempts    int        `gorm:"column:outbox_attempts;not null;default:0" json:"outbox_attempts"`
	OutboxNextRetryAt *time.Time `gorm:"column:outbox_next_retry_at" json:"outbox_next_retry_at,omitempty"`
	OutboxCreatedAt   time.Time  `gorm:"column:outbox_created_at;autoCreateTime" json:"outbox_created_at"`
	OutboxUpdatedAt   time.Time  `gorm:"column:outbox_updated_at;autoUpdateTime" json:"outbox_updated_at"`
}

func (EmailOutboxModel) TableName() string {
	return "email_outbox"
}
