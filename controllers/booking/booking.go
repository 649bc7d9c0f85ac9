package booking

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"travel-booking/domain"
	"travel-booking/logger"
	bookingModel "travel-booking/models/booking"
	bookingService "travel-booking/services/booking"
	"travel-booking/types"
	bookingTypes "travel-booking/types/booking"
	"travel-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// uploadDir is where traveler ID-proof documents land; the stored traveler
// record keeps the relative path as an opaque document reference.
const uploadDir = "Uploads/BookingIDProofs"

// BookingController handles booking-related HTTP requests
type BookingController struct {
	Service *bookingService.Service
	Logger  *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(service *bookingService.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		Service: service,
		Logger:  asyncLogger,
	}
}

// statusForError maps the domain error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case domain.IsValidation(err), domain.IsSignature(err), domain.IsIllegalTransition(err):
		return fiber.StatusBadRequest
	case domain.IsNotFound(err):
		return fiber.StatusNotFound
	case domain.IsForbidden(err):
		return fiber.StatusForbidden
	case domain.IsGateway(err):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
		Data:    nil,
	})
}

// Store creates a new booking together with its payment-gateway order.
// Accepts a JSON body, or multipart/form-data when traveler ID proofs are
// uploaded alongside (field names id_proof_image_0, id_proof_image_1, ...).
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	var uploads []bookingTypes.TravelerUpload

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		parsed, parsedUploads, err := bc.parseMultipart(c)
		if err != nil {
			logger.Error("Failed to parse multipart booking request", err)
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
				Data:    nil,
			})
		}
		req = parsed
		uploads = parsedUploads
	} else {
		if err := c.BodyParser(&req); err != nil {
			logger.Error("Failed to parse request body", err)
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request body",
				Data:    nil,
			})
		}
	}

	_, result, err := bc.Service.Create(c.UserContext(), req, uploads)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    result,
	})
}

// parseMultipart rebuilds the create request from form fields and saves the
// uploaded ID-proof documents, returning their slot indices and paths.
func (bc *BookingController) parseMultipart(c *fiber.Ctx) (bookingTypes.BookingCreateRequest, []bookingTypes.TravelerUpload, error) {
	var req bookingTypes.BookingCreateRequest

	tripID, _ := strconv.ParseUint(c.FormValue("trip_id"), 10, 32)
	req.TripID = uint(tripID)
	req.TripType = c.FormValue("trip_type")
	req.FullName = c.FormValue("full_name")
	req.Email = c.FormValue("email")
	req.Phone = c.FormValue("phone")
	req.TravelDate = c.FormValue("travel_date")
	req.NumberOfPeople, _ = strconv.Atoi(c.FormValue("number_of_people"))
	req.PricePerPerson, _ = strconv.ParseFloat(c.FormValue("price_per_person"), 64)
	req.TotalAmount, _ = strconv.ParseFloat(c.FormValue("total_amount"), 64)
	req.PaymentMethod = c.FormValue("payment_method")
	req.SpecialRequest = c.FormValue("special_request")

	// multipart carries travelers_data as a serialized string
	if raw := c.FormValue("travelers_data"); raw != "" {
		travelers, err := bookingModel.ParseTravelerList(raw)
		if err != nil {
			return req, nil, err
		}
		req.TravelersData = travelers
	}

	form, err := c.MultipartForm()
	if err != nil {
		return req, nil, fmt.Errorf("invalid multipart form")
	}

	var uploads []bookingTypes.TravelerUpload
	for field, files := range form.File {
		idx, ok := utils.UploadSlotIndex(field)
		if !ok || len(files) == 0 {
			continue
		}
		file := files[0]
		ext := filepath.Ext(file.Filename)
		path := filepath.Join(uploadDir, "booking-id-"+uuid.NewString()+ext)
		if err := c.SaveFile(file, path); err != nil {
			return req, nil, fmt.Errorf("failed to store uploaded document")
		}
		uploads = append(uploads, bookingTypes.TravelerUpload{
			SlotIndex: idx,
			Path:      filepath.ToSlash(path),
		})
	}

	return req, uploads, nil
}

// Show returns a single booking by id.
func (bc *BookingController) Show(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
			Data:    nil,
		})
	}

	booking, err := bc.Service.Get(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking retrieved successfully",
		Data:    booking,
	})
}

// Index lists bookings with optional filters and pagination.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	var q bookingTypes.BookingListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid query parameters",
			Data:    nil,
		})
	}

	bookings, err := bc.Service.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}

	count := len(bookings)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Count:   &count,
		Data:    bookings,
	})
}

// UserBookings lists a customer's bookings by email.
func (bc *BookingController) UserBookings(c *fiber.Ctx) error {
	email := c.Params("email")

	bookings, err := bc.Service.ListForCustomer(c.UserContext(), email)
	if err != nil {
		return respondError(c, err)
	}

	count := len(bookings)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User bookings retrieved successfully",
		Count:   &count,
		Data:    bookings,
	})
}

// UpdateStatus applies an administrative status change. Confirmation is
// rejected here by construction; only cancellation can succeed.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
			Data:    nil,
		})
	}

	var req bookingTypes.BookingStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	booking, err := bc.Service.UpdateStatus(c.UserContext(), uint(id), req.BookingStatus)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking status updated successfully",
		Data:    booking,
	})
}

// UpdatePaymentStatus always refuses: payment status is owned by the
// verified payment callback.
func (bc *BookingController) UpdatePaymentStatus(c *fiber.Ctx) error {
	id, _ := strconv.ParseUint(c.Params("id"), 10, 32)

	err := bc.Service.UpdatePaymentStatus(c.UserContext(), uint(id))
	return respondError(c, err)
}

// Cancel soft-deletes a booking. Repeating the call returns 404, making the
// endpoint idempotent.
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
			Data:    nil,
		})
	}

	booking, err := bc.Service.Cancel(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking cancelled successfully",
		Data:    booking,
	})
}
