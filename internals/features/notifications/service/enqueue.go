package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chrisarpong/TEIN-Registration/internals/features/notifications/model"
)

// EnqueueWelcomeEmail queues the post-payment email inside the caller's
// transaction. Members without an email address (legacy digitized records,
// renewals entered without one) simply get nothing queued.
func EnqueueWelcomeEmail(tx *gorm.DB, memberID uuid.UUID, recipient, fullName, memberCode, program string, amount float64) error {
	if recipient == "" {
		return nil
	}

	subject := fmt.Sprintf("Welcome to TEIN! Your ID: %s", memberCode)
	body := fmt.Sprintf(
		`<div style="font-family:sans-serif;color:#333;"><h1 style="color:#006837;">Welcome to TEIN-UCC!</h1>`+
			`<p>Comrade <strong>%s</strong>,</p><p>Your registration was successful.</p>`+
			`<div style="background:#f4f4f4;padding:20px;border-radius:10px;">`+
			`<p><strong>TEIN ID:</strong> %s</p><p><strong>Amount Paid:</strong> GHS %.2f</p>`+
			`<p><strong>Program:</strong> %s</p></div>`+
			`<p>Please keep this ID safe. You will need it for renewals and voting.</p>`+
			`<p>Ey3 Zu! Ey3 Za!</p></div>`,
		fullName, memberCode, amount, program,
	)

	entry := model.EmailOutboxModel{
		OutboxMemberID:  &memberID,
		OutboxRecipient: recipient,
		OutboxSubject:   subject,
		OutboxBody:      body,
		OutboxStatus:    model.OutboxStatusPending,
	}
	return tx.Create(&entry).Error
}

// EnqueueRenewalEmail queues the renewal receipt.
func EnqueueRenewalEmail(tx *gorm.DB, memberID uuid.UUID, recipient, fullName, memberCode string, amount float64) error {
	if recipient == "" {
		return nil
	}

	subject := fmt.Sprintf("TEIN Renewal Received — %s", memberCode)
	body := fmt.Sprintf(
		`<div style="font-family:sans-serif;color:#333;"><h1 style="color:#006837;">Renewal Complete!</h1>`+
			`<p>Thank you, <strong>%s</strong>.</p>`+
			`<div style="background:#f4f4f4;padding:20px;border-radius:10px;">`+
			`<p><strong>TEIN ID:</strong> %s</p><p><strong>Amount Paid:</strong> GHS %.2f</p></div>`+
			`<p>Your membership stays active for the new period.</p></div>`,
		fullName, memberCode, amount,
	)

	entry := model.EmailOutboxModel{
		OutboxMemberID:  &memberID,
		OutboxRecipient: recipient,
		OutboxSubject:   subject,
		OutboxBody:      body,
		OutboxStatus:    model.OutboxStatusPending,
	}
	return tx.Create(&entry).Error
}
