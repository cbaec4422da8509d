package dto

import (
	"time"

	"github.com/google/uuid"

	"yugamki_backend/internals/features/finance/payments/model"
)

type CreateOrderRequest struct {
	RegistrationID uuid.UUID `json:"registration_id" validate:"required"`
}

type BuyPassRequest struct {
	Days int `json:"days" validate:"required,oneof=1 2 3"`
}

type RefundRequest struct {
	Amount int    `json:"amount" validate:"required,min=1"`
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

// WebhookNotification is the gateway's HTTP notification payload.
// Amounts arrive as decimal strings ("500.00").
type WebhookNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

type PaymentResponse struct {
	PaymentID             uuid.UUID  `json:"payment_id"`
	PaymentRegistrationID *uuid.UUID `json:"payment_registration_id,omitempty"`
	PaymentPassID         *uuid.UUID `json:"payment_pass_id,omitempty"`
	PaymentOrderID        string     `json:"payment_order_id"`
	PaymentAmount         int        `json:"payment_amount"`
	PaymentStatus         string     `json:"payment_status"`
	PaymentSnapToken      *string    `json:"payment_snap_token,omitempty"`
	PaymentRedirectURL    *string    `json:"payment_redirect_url,omitempty"`
	PaymentRefundAmount   int        `json:"payment_refund_amount,omitempty"`
	PaymentPaidAt         *time.Time `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt      time.Time  `json:"payment_created_at"`
}

func ToPaymentResponse(m *model.PaymentModel) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:             m.PaymentID,
		PaymentRegistrationID: m.PaymentRegistrationID,
		PaymentPassID:         m.PaymentPassID,
		PaymentOrderID:        m.PaymentOrderID,
		PaymentAmount:         m.PaymentAmount,
		PaymentStatus:         m.PaymentStatus,
		PaymentSnapToken:      m.PaymentSnapToken,
		PaymentRedirectURL:    m.PaymentRedirectURL,
		PaymentRefundAmount:   m.PaymentRefundAmount,
		PaymentPaidAt:         m.PaymentPaidAt,
		PaymentCreatedAt:      m.PaymentCreatedAt,
	}
}

func ToPaymentResponseList(models []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToPaymentResponse(&models[i]))
	}
	return out
}

type PassResponse struct {
	PassID     uuid.UUID `json:"pass_id"`
	PassDays   int       `json:"pass_days"`
	PassAmount int       `json:"pass_amount"`
	PassActive bool      `json:"pass_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToPassResponse(m *model.GeneralEventPassModel) *PassResponse {
	return &PassResponse{
		PassID:     m.PassID,
		PassDays:   m.PassDays,
		PassAmount: m.PassAmount,
		PassActive: m.PassActive,
		CreatedAt:  m.PassCreatedAt,
	}
}
