package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "yugamki_backend/internals/features/events/events/model"
	regModel "yugamki_backend/internals/features/events/registrations/model"
	"yugamki_backend/internals/features/finance/payments/dto"
	"yugamki_backend/internals/features/finance/payments/model"
	"yugamki_backend/internals/features/finance/payments/service"
	userModel "yugamki_backend/internals/features/users/user/model"
	helper "yugamki_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func newOrderID() string {
	return "YGM-" + strings.ToUpper(uuid.NewString()[:18])
}

// POST /api/u/payments/orders
//
// Resolves the fee for a registration and opens a gateway order. Zero-fee
// outcomes settle immediately; GENERAL events without an active festival
// pass get a structured 402 so the client can start the pass flow.
func (ctrl *PaymentController) CreateOrder(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var reg regModel.RegistrationModel
	if err := ctrl.DB.First(&reg, "registration_id = ?", req.RegistrationID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}

	isTeam := reg.RegistrationTeamID != nil
	if isTeam {
		var team regModel.TeamModel
		if err := ctrl.DB.First(&team, "team_id = ?", *reg.RegistrationTeamID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Team not found")
		}
		if team.TeamLeaderID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Only the team leader may pay for the team")
		}
	} else if reg.RegistrationUserID == nil || *reg.RegistrationUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not your registration")
	}

	if reg.RegistrationStatus == regModel.RegStatusConfirmed {
		return helper.JsonError(c, fiber.StatusConflict, "Registration is already confirmed")
	}

	var existing model.PaymentModel
	if err := ctrl.DB.
		Where("payment_registration_id = ? AND payment_status IN ?",
			reg.RegistrationID, []string{model.PaymentStatusPending, model.PaymentStatusCompleted}).
		First(&existing).Error; err == nil {
		return helper.JsonOK(c, "Existing order", dto.ToPaymentResponse(&existing))
	}

	var event eventModel.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", reg.RegistrationEventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var passCount int64
	if err := ctrl.DB.Model(&model.GeneralEventPassModel{}).
		Where("pass_user_id = ? AND pass_active = true", userID).
		Count(&passCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check festival pass")
	}

	fee, err := service.ResolveFee(&event, isTeam, passCount > 0)
	if err != nil {
		if errors.Is(err, service.ErrGeneralPassRequired) {
			return helper.JsonErrorExtra(c, fiber.StatusPaymentRequired,
				"A festival pass is required for general events",
				fiber.Map{"requires_general_pass": true})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve fee")
	}

	regID := reg.RegistrationID
	payment := model.PaymentModel{
		PaymentUserID:         userID,
		PaymentRegistrationID: &regID,
		PaymentOrderID:        newOrderID(),
		PaymentAmount:         fee,
	}

	if fee == 0 {
		now := time.Now()
		payment.PaymentStatus = model.PaymentStatusCompleted
		payment.PaymentPaidAt = &now
		txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			return tx.Model(&regModel.RegistrationModel{}).
				Where("registration_id = ?", reg.RegistrationID).
				Update("registration_status", regModel.RegStatusConfirmed).Error
		})
		if txErr != nil {
			log.Printf("[ERROR] settle zero-fee order: %v", txErr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to confirm registration")
		}
		return helper.JsonCreated(c, "Registration confirmed", dto.ToPaymentResponse(&payment))
	}

	var payer userModel.UserModel
	if err := ctrl.DB.First(&payer, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payer profile")
	}

	token, redirectURL, err := service.GenerateSnapToken(payment.PaymentOrderID, fee, payer.FullName, payer.Email)
	if err != nil {
		log.Printf("[ERROR] gateway order %s: %v", payment.PaymentOrderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway is unavailable")
	}

	payment.PaymentStatus = model.PaymentStatusPending
	payment.PaymentSnapToken = &token
	payment.PaymentRedirectURL = &redirectURL
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		log.Printf("[ERROR] persist order %s: %v", payment.PaymentOrderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create order")
	}
	return helper.JsonCreated(c, "Order created", dto.ToPaymentResponse(&payment))
}

// POST /api/u/payments/pass
//
// One festival pass per user; the pass activates when its payment
// settles through the webhook.
func (ctrl *PaymentController) BuyPass(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.BuyPassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	price, ok := service.PassPrice(req.Days)
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{"days": {"must be 1, 2 or 3"}})
	}

	var payer userModel.UserModel
	if err := ctrl.DB.First(&payer, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payer profile")
	}

	pass := model.GeneralEventPassModel{
		PassUserID: userID,
		PassDays:   req.Days,
		PassAmount: price,
	}
	orderID := newOrderID()

	token, redirectURL, err := service.GenerateSnapToken(orderID, price, payer.FullName, payer.Email)
	if err != nil {
		log.Printf("[ERROR] gateway pass order %s: %v", orderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway is unavailable")
	}

	var payment model.PaymentModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pass).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "You already have a festival pass")
			}
			return err
		}
		passID := pass.PassID
		payment = model.PaymentModel{
			PaymentUserID:      userID,
			PaymentPassID:      &passID,
			PaymentOrderID:     orderID,
			PaymentAmount:      price,
			PaymentStatus:      model.PaymentStatusPending,
			PaymentSnapToken:   &token,
			PaymentRedirectURL: &redirectURL,
		}
		return tx.Create(&payment).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.FromFiberError(c, fe)
		}
		log.Printf("[ERROR] create pass order: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create pass order")
	}
	return helper.JsonCreated(c, "Pass order created", dto.ToPaymentResponse(&payment))
}

// GET /api/u/payments
func (ctrl *PaymentController) MyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PaymentModel{}).Where("payment_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payments")
	}
	var payments []model.PaymentModel
	if err := q.Order("payment_created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	return helper.JsonList(c, "ok", dto.ToPaymentResponseList(payments), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/payments/pass
func (ctrl *PaymentController) MyPass(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var pass model.GeneralEventPassModel
	if err := ctrl.DB.First(&pass, "pass_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No festival pass found")
	}
	return helper.JsonOK(c, "ok", dto.ToPassResponse(&pass))
}

// POST /api/a/payments/:id/refund  (ADMIN only, enforced by route)
func (ctrl *PaymentController) Refund(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var req dto.RefundRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}
	if payment.PaymentStatus != model.PaymentStatusCompleted &&
		payment.PaymentStatus != model.PaymentStatusPartialRefund {
		return helper.JsonError(c, fiber.StatusConflict, "Only settled payments can be refunded")
	}
	remaining := payment.PaymentAmount - payment.PaymentRefundAmount
	if req.Amount > remaining {
		return helper.JsonError(c, fiber.StatusConflict, "Refund exceeds the remaining paid amount")
	}

	now := time.Now()
	totalRefund := payment.PaymentRefundAmount + req.Amount
	updates := map[string]interface{}{
		"payment_refund_amount": totalRefund,
		"payment_refund_reason": req.Reason,
		"payment_refunded_at":   now,
		"payment_status":        service.RefundStatus(payment.PaymentAmount, totalRefund),
	}
	if err := ctrl.DB.Model(&payment).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] refund payment %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record refund")
	}
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload payment")
	}
	return helper.JsonUpdated(c, "Refund recorded", dto.ToPaymentResponse(&payment))
}

// GET /api/a/payments
func (ctrl *PaymentController) ListPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.PaymentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payments")
	}
	var payments []model.PaymentModel
	if err := q.Order("payment_created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	return helper.JsonList(c, "ok", dto.ToPaymentResponseList(payments), helper.BuildPagination(total, paging.Page, paging.PerPage))
}
