package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chrisarpong/TEIN-Registration/internals/constants"
	memberModel "github.com/chrisarpong/TEIN-Registration/internals/features/membership/members/model"
	"github.com/chrisarpong/TEIN-Registration/internals/features/membership/payments/model"
	notifService "github.com/chrisarpong/TEIN-Registration/internals/features/notifications/service"
)

var ErrUnknownOrder = errors.New("unknown order id")

// SettlePayment applies a gateway notification to the matching payment row.
// capture/settlement marks the payment Success and, for registrations,
// activates the member (the insert trigger assigns the code on that update).
// expire/cancel/deny marks the payment Failed. Anything else is ignored.
// Replayed notifications are no-ops: a payment already out of Pending is
// left untouched.
func SettlePayment(db *gorm.DB, orderID, transactionStatus string) error {
	switch transactionStatus {
	case "capture", "settlement":
		return markPaid(db, orderID)
	case "expire", "cancel", "deny":
		return markFailed(db, orderID)
	default:
		log.Printf("[INFO] webhook: order %s status %q ignored", orderID, transactionStatus)
		return nil
	}
}

func markPaid(db *gorm.DB, orderID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Lock the row so two concurrent notifications for the same order
		// serialize here; the loser sees a non-Pending status and stops.
		var payment model.PaymentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_order_id = ?", orderID).
			First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownOrder
			}
			return err
		}
		if payment.PaymentStatus != constants.PaymentStatusPending {
			return nil
		}

		now := time.Now()
		payment.PaymentStatus = constants.PaymentStatusSuccess
		payment.PaymentPaidAt = &now
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		var member memberModel.MemberModel
		if err := tx.First(&member, "member_id = ?", payment.PaymentMemberID).Error; err != nil {
			return err
		}

		isRenewal := payment.PaymentType == constants.PaymentTypeRenewal

		if !isRenewal && member.MemberStatus == constants.MemberStatusPending {
			// The BEFORE UPDATE trigger fills member_code on this flip.
			if err := tx.Model(&memberModel.MemberModel{}).
				Where("member_id = ?", member.MemberID).
				Update("member_status", constants.MemberStatusActive).Error; err != nil {
				return err
			}
			// Reload into a fresh struct to pick up the trigger-assigned
			// code; querying through the populated one would re-add its
			// primary key to the WHERE clause.
			var refreshed memberModel.MemberModel
			if err := tx.Where("member_id = ?", member.MemberID).Take(&refreshed).Error; err != nil {
				return err
			}
			member = refreshed
		}

		recipient := ""
		if member.MemberEmail != nil {
			recipient = strings.TrimSpace(*member.MemberEmail)
		}
		code := ""
		if member.MemberCode != nil {
			code = *member.MemberCode
		}

		if isRenewal {
			return notifService.EnqueueRenewalEmail(tx, member.MemberID, recipient, member.MemberFullName, code, payment.PaymentAmount)
		}
		return notifService.EnqueueWelcomeEmail(tx, member.MemberID, recipient, member.MemberFullName, code, member.MemberProgram, payment.PaymentAmount)
	})
}

func markFailed(db *gorm.DB, orderID string) error {
	res := db.Model(&model.PaymentModel{}).
		Where("payment_order_id = ? AND payment_status = ?", orderID, constants.PaymentStatusPending).
		Update("payment_status", constants.PaymentStatusFailed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("[INFO] webhook: order %s failure notification matched no pending payment", orderID)
	}
	return nil
}
