package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yugamki_backend/internals/configs"
	"yugamki_backend/internals/features/finance/payments/dto"
	"yugamki_backend/internals/features/finance/payments/service"
	helper "yugamki_backend/internals/helpers"
)

type WebhookController struct {
	DB *gorm.DB
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{DB: db}
}

// POST /api/payments/webhook
//
// Unauthenticated endpoint, trusted only through the signature check.
func (ctrl *WebhookController) HandleNotification(c *fiber.Ctx) error {
	var notif dto.WebhookNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}
	if notif.OrderID == "" || notif.StatusCode == "" || notif.SignatureKey == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Incomplete notification payload")
	}

	if !service.VerifySignature(notif.OrderID, notif.StatusCode, notif.GrossAmount,
		configs.MidtransServerKey, notif.SignatureKey) {
		log.Printf("[WARN] webhook signature mismatch for order %s", notif.OrderID)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid signature")
	}

	res, err := service.ApplySettlement(ctrl.DB, notif.OrderID, notif.TransactionStatus, notif.FraudStatus, notif.PaymentType)
	if err != nil {
		log.Printf("[ERROR] webhook order %s: %v", notif.OrderID, err)
		return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
	}

	return helper.JsonOK(c, "Notification processed", fiber.Map{
		"order_id": res.OrderID,
		"status":   res.NewStatus,
	})
}
