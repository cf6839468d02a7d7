package booking

import (
	"net/http"
	"time"

	"fitbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/book", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/all-bookings", h.ListAllBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", "Missing fields")
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrMissingFields:
			response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", "Missing fields")
		case ErrInvalidEmail:
			response.Error(c, http.StatusBadRequest, "INVALID_EMAIL", "Invalid email format")
		case ErrInvalidName:
			response.Error(c, http.StatusBadRequest, "INVALID_NAME",
				"Invalid name. Name must contain only letters and spaces (min 2 characters).")
		case ErrInvalidDateFormat:
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_FORMAT",
				"Invalid date format. Use YYYY-MM-DD HH:MM")
		case ErrClassNotFound:
			response.Error(c, http.StatusNotFound, "CLASS_NOT_FOUND", "Class not found")
		case ErrNoSlotsAvailable:
			response.Error(c, http.StatusBadRequest, "NO_SLOTS_AVAILABLE", "No slots available")
		case ErrInvalidTimezone:
			response.Error(c, http.StatusBadRequest, "INVALID_TIMEZONE", "Invalid timezone")
		case ErrDateMismatch:
			response.Error(c, http.StatusBadRequest, "DATE_MISMATCH",
				"Time slots are not available for this date.")
		default:
			response.Internal(c)
		}
		return
	}

	response.OK(c, http.StatusCreated, CreateBookingResponse{
		Message:      "Booking successful",
		ClassTimeUTC: res.ClassTimeUTC.Format(time.RFC3339),
		Timezone:     res.Timezone,
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", "Email is required")
		return
	}

	data, err := h.service.ListByEmail(c.Request.Context(), email, c.Query("timezone"))
	if err != nil {
		switch err {
		case ErrNoBookings:
			response.Error(c, http.StatusNotFound, "NO_DATA_FOUND", "No bookings found")
		case ErrInvalidTimezone:
			response.Error(c, http.StatusBadRequest, "INVALID_TIMEZONE", "Invalid timezone")
		default:
			response.Internal(c)
		}
		return
	}

	response.OK(c, http.StatusOK, data)
}

func (h *Handler) ListAllBookings(c *gin.Context) {
	data, err := h.service.ListAll(c.Request.Context(), c.Query("timezone"))
	if err != nil {
		switch err {
		case ErrNoBookings:
			response.Error(c, http.StatusNotFound, "NO_DATA_FOUND", "No bookings available")
		case ErrInvalidTimezone:
			response.Error(c, http.StatusBadRequest, "INVALID_TIMEZONE", "Invalid timezone")
		default:
			response.Internal(c)
		}
		return
	}

	response.OK(c, http.StatusOK, data)
}
