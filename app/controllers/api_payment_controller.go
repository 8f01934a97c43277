package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndikaSaputra/RumahLink/app/models"
	"github.com/AndikaSaputra/RumahLink/app/repository"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/database"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/env"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/mail"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/midtrans"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/subscription"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/usercontext"
)

var midtransClient = midtrans.NewClientFromEnv()

// premiumPriceIDR reads the configured subscription price.
func premiumPriceIDR() int64 {
	raw := env.GetEnv("PREMIUM_PRICE_IDR", "250000")
	price, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || price <= 0 {
		return 250000
	}
	return price
}

// HandleAPICreateOrder creates a pending payment and returns the Snap token
// for the payment page.
func HandleAPICreateOrder(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user")
	}

	amount := premiumPriceIDR()
	orderID := fmt.Sprintf("ORDER-%d-%s", user.ID, uuid.New().String())

	payment := &models.Payment{
		UserID:           user.ID,
		Amount:           amount,
		Currency:         "IDR",
		OrderID:          orderID,
		Status:           models.PAYMENT_STATUS_PENDING,
		SubscriptionDays: models.DefaultSubscriptionDays,
		Description:      "RumahLink Premium 30 hari",
	}
	if err := repository.GetGlobalFactory().GetPaymentRepository().Create(payment); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create order")
	}

	snapReq := midtrans.NewSnapTokenRequest(orderID, amount, user.Name, user.Email, payment.Description)
	token, err := midtransClient.SnapToken(c.Context(), snapReq)
	if err != nil {
		log.Printf("[Payment] Snap token request failed for %s: %v", orderID, err)
		return errorJSON(c, fiber.StatusBadGateway, "payment_gateway_error", "Payment gateway unavailable")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order_id":   orderID,
		"amount":     amount,
		"currency":   "IDR",
		"snap_token": token,
		"status":     payment.Status,
	})
}

// HandleAPIPaymentStatus returns the state of one of the user's own orders.
func HandleAPIPaymentStatus(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	orderID := c.Params("order_id")
	if orderID == "" {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Missing order id")
	}

	payment, err := repository.GetGlobalFactory().GetPaymentRepository().GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Order not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load order")
	}
	if payment.UserID != userCtx.UserID {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "Order not found")
	}

	return c.JSON(fiber.Map{
		"order_id":       payment.OrderID,
		"status":         payment.Status,
		"amount":         payment.Amount,
		"currency":       payment.Currency,
		"payment_method": payment.PaymentMethod,
		"transaction_id": payment.TransactionID,
		"completed_at":   formatTimePtr(payment.CompletedAt),
		"created_at":     payment.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// HandleAPIPaymentHistory lists the user's orders, newest first.
func HandleAPIPaymentHistory(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	offset, limit := parsePagination(c, 20, 100)

	payments, err := repository.GetGlobalFactory().GetPaymentRepository().GetByUserID(userCtx.UserID, offset, limit)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load orders")
	}
	return c.JSON(fiber.Map{"items": payments, "offset": offset, "limit": limit})
}

// HandleMidtransCallback processes the payment provider's server-to-server
// notification. The signature is verified before anything is read from the
// payload, the payment transitions at most once, and a successful settlement
// activates the buyer's subscription.
func HandleMidtransCallback(c *fiber.Ctx) error {
	payload, err := midtrans.ParseCallback(c.Body())
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Malformed notification body")
	}

	if !midtrans.VerifySignature(payload.OrderID, payload.StatusCode, payload.GrossAmount,
		midtransClient.ServerKey(), payload.SignatureKey) {
		log.Printf("[Midtrans] Invalid signature for order %s", payload.OrderID)
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Invalid signature")
	}

	paymentRepo := repository.GetGlobalFactory().GetPaymentRepository()
	payment, err := paymentRepo.GetByOrderID(payload.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "Unknown order")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load order")
	}

	// Providers retry notifications; a payment that already reached a
	// terminal status is acknowledged without another transition.
	if payment.IsTerminal() {
		return c.JSON(fiber.Map{"success": true})
	}

	if payload.TransactionID != "" {
		payment.TransactionID = payload.TransactionID
	}
	if payload.PaymentType != "" {
		payment.PaymentMethod = payload.PaymentType
	}

	switch midtrans.NormalizeTransactionStatus(payload.TransactionStatus) {
	case midtrans.OutcomeSuccess:
		now := time.Now()
		payment.Status = models.PAYMENT_STATUS_SUCCESS
		payment.CompletedAt = &now
		if err := paymentRepo.Update(payment); err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update order")
		}

		subSvc := subscription.NewServiceFromDB(database.GetDB())
		user, err := subSvc.Grant(c.Context(), payment.UserID, payment.SubscriptionDays)
		if err != nil {
			log.Printf("[Midtrans] Failed to activate subscription for order %s: %v", payment.OrderID, err)
			return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to activate subscription")
		}

		go func(email, orderID string, amount int64, days int) {
			if email == "" {
				return
			}
			if err := mail.SendPaymentReceipt(email, orderID, amount, days); err != nil {
				log.Printf("[Midtrans] Failed to send receipt for %s: %v", orderID, err)
			}
		}(user.Email, payment.OrderID, payment.Amount, payment.SubscriptionDays)

	case midtrans.OutcomeFailed:
		payment.Status = models.PAYMENT_STATUS_FAILED
		if err := paymentRepo.Update(payment); err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update order")
		}

	default:
		// Still pending; persist the transaction id so later notifications
		// and support lookups can correlate.
		if err := paymentRepo.Update(payment); err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update order")
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
