package routes

import (
	"os"
	"strconv"
	"time"

	bookingController "travel-booking/controllers/booking"
	paymentController "travel-booking/controllers/payment"
	"travel-booking/httpServices/gateway"
	"travel-booking/logger"
	"travel-booking/middleware"
	bookingService "travel-booking/services/booking"
	paymentService "travel-booking/services/payment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	fraction, _ := strconv.ParseFloat(os.Getenv("DEPOSIT_FRACTION"), 64)
	timeoutSecs, _ := strconv.Atoi(os.Getenv("GATEWAY_TIMEOUT"))

	gatewayClient := gateway.NewClient(
		os.Getenv("GATEWAY_BASE_URL"),
		os.Getenv("GATEWAY_KEY_ID"),
		os.Getenv("GATEWAY_KEY_SECRET"),
		time.Duration(timeoutSecs)*time.Second,
	)

	asyncLogger := logger.NewAsyncLogger(db)
	bookingSvc := bookingService.NewService(db, gatewayClient, fraction, os.Getenv("GATEWAY_CURRENCY"))
	verifier := paymentService.NewVerifier(db, os.Getenv("GATEWAY_KEY_SECRET"))

	bookingCtrl := bookingController.NewBookingController(bookingSvc, asyncLogger)
	paymentCtrl := paymentController.NewPaymentController(verifier, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "travel-booking",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	api := app.Group("/api")
	bookingGroup := api.Group("/booking")

	bookingGroup.Post("/bookings", bookingCtrl.Store)
	bookingGroup.Get("/bookings", bookingCtrl.Index)
	bookingGroup.Get("/bookings/user/:email", bookingCtrl.UserBookings)
	bookingGroup.Get("/bookings/:id", bookingCtrl.Show)
	bookingGroup.Put("/bookings/:id/status", bookingCtrl.UpdateStatus)
	bookingGroup.Put("/bookings/:id/payment", bookingCtrl.UpdatePaymentStatus)
	bookingGroup.Delete("/bookings/:id", bookingCtrl.Cancel)

	/*=============================================================================
	| Payment Routes
	===============================================================================*/
	paymentGroup := api.Group("/payment")

	paymentGroup.Post("/verify", paymentCtrl.Verify)
}
