package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	regModel "yugamki_backend/internals/features/events/registrations/model"
	"yugamki_backend/internals/features/finance/payments/model"
)

// SettlementResult reports what a gateway notification changed.
type SettlementResult struct {
	OrderID   string
	NewStatus string
	Changed   bool
}

// ApplySettlement moves a payment to its terminal state from a verified
// gateway notification and propagates the outcome: a settled
// registration payment confirms the registration, a settled pass
// payment activates the pass. Repeated notifications are no-ops.
func ApplySettlement(db *gorm.DB, orderID, transactionStatus, fraudStatus, paymentType string) (*SettlementResult, error) {
	res := &SettlementResult{OrderID: orderID}

	err := db.Transaction(func(tx *gorm.DB) error {
		var payment model.PaymentModel
		if err := tx.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
			return fmt.Errorf("payment with order_id %s not found", orderID)
		}

		if payment.PaymentStatus != model.PaymentStatusPending {
			res.NewStatus = payment.PaymentStatus
			return nil
		}

		switch transactionStatus {
		case "capture":
			if fraudStatus != "" && fraudStatus != "accept" {
				log.Printf("[INFO] order %s capture held by fraud status %s", orderID, fraudStatus)
				res.NewStatus = payment.PaymentStatus
				return nil
			}
			fallthrough
		case "settlement":
			now := time.Now()
			payment.PaymentStatus = model.PaymentStatusCompleted
			payment.PaymentPaidAt = &now
			if paymentType != "" {
				pt := paymentType
				payment.PaymentMethod = &pt
			}
		case "expire", "cancel", "deny":
			payment.PaymentStatus = model.PaymentStatusFailed
		default:
			log.Printf("[INFO] order %s status %s left as pending", orderID, transactionStatus)
			res.NewStatus = payment.PaymentStatus
			return nil
		}

		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		res.NewStatus = payment.PaymentStatus
		res.Changed = true

		if payment.PaymentStatus != model.PaymentStatusCompleted {
			if payment.PaymentStatus == model.PaymentStatusFailed && payment.PaymentPassID != nil {
				return ReleaseFailedPass(tx, *payment.PaymentPassID)
			}
			return nil
		}
		if payment.PaymentRegistrationID != nil {
			return tx.Model(&regModel.RegistrationModel{}).
				Where("registration_id = ?", *payment.PaymentRegistrationID).
				Update("registration_status", regModel.RegStatusConfirmed).Error
		}
		if payment.PaymentPassID != nil {
			return tx.Model(&model.GeneralEventPassModel{}).
				Where("pass_id = ?", *payment.PaymentPassID).
				Update("pass_active", true).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReleaseFailedPass removes the never-activated pass row created for a
// purchase that failed at the gateway. The per-user unique index would
// otherwise block every retry with a duplicate error.
func ReleaseFailedPass(tx *gorm.DB, passID uuid.UUID) error {
	return tx.Where("pass_id = ? AND pass_active = false", passID).
		Delete(&model.GeneralEventPassModel{}).Error
}
