package payment

import (
	"travel-booking/domain"
	"travel-booking/logger"
	paymentService "travel-booking/services/payment"
	"travel-booking/types"

	"github.com/gofiber/fiber/v2"
)

// PaymentController handles the payment-gateway callback.
type PaymentController struct {
	Verifier *paymentService.Verifier
	Logger   *logger.AsyncLogger
}

func NewPaymentController(verifier *paymentService.Verifier, asyncLogger *logger.AsyncLogger) *PaymentController {
	return &PaymentController{
		Verifier: verifier,
		Logger:   asyncLogger,
	}
}

// Verify checks the callback signature and confirms the matching booking.
// 400 on a bad signature, 404 when no pending booking matches the order id.
func (pc *PaymentController) Verify(c *fiber.Ctx) error {
	var req types.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse payment callback body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	booking, err := pc.Verifier.VerifyAndApply(c.UserContext(), req)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case domain.IsValidation(err), domain.IsSignature(err):
			status = fiber.StatusBadRequest
		case domain.IsNotFound(err):
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(types.ApiResponse{
			Status:  status,
			Message: err.Error(),
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment verified successfully",
		Data:    booking,
	})
}
