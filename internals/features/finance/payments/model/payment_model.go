package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment states
const (
	PaymentStatusPending       = "PENDING"
	PaymentStatusCompleted     = "COMPLETED"
	PaymentStatusFailed        = "FAILED"
	PaymentStatusRefunded      = "REFUNDED"
	PaymentStatusPartialRefund = "PARTIAL_REFUND"
)

// PaymentModel covers both registration fees and festival pass purchases;
// exactly one of the two reference columns is set.
type PaymentModel struct {
	PaymentID             uuid.UUID  `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentUserID         uuid.UUID  `gorm:"column:payment_user_id;type:uuid;not null;index" json:"payment_user_id"`
	PaymentRegistrationID *uuid.UUID `gorm:"column:payment_registration_id;type:uuid;index" json:"payment_registration_id,omitempty"`
	PaymentPassID         *uuid.UUID `gorm:"column:payment_pass_id;type:uuid;index" json:"payment_pass_id,omitempty"`

	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex;not null" json:"payment_order_id"`
	PaymentAmount  int    `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentStatus  string `gorm:"column:payment_status;type:varchar(20);not null;default:'PENDING';index" json:"payment_status"`

	PaymentSnapToken   *string `gorm:"column:payment_snap_token;type:varchar(255)" json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string `gorm:"column:payment_redirect_url;type:text" json:"payment_redirect_url,omitempty"`
	PaymentMethod      *string `gorm:"column:payment_method;type:varchar(50)" json:"payment_method,omitempty"`

	PaymentRefundAmount int        `gorm:"column:payment_refund_amount;not null;default:0" json:"payment_refund_amount"`
	PaymentRefundReason *string    `gorm:"column:payment_refund_reason;type:text" json:"payment_refund_reason,omitempty"`
	PaymentRefundedAt   *time.Time `gorm:"column:payment_refunded_at;type:timestamptz" json:"payment_refunded_at,omitempty"`

	PaymentPaidAt    *time.Time `gorm:"column:payment_paid_at;type:timestamptz" json:"payment_paid_at,omitempty"`
	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;type:timestamptz;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time  `gorm:"column:payment_updated_at;type:timestamptz;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
