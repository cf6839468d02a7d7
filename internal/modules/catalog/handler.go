package catalog

import (
	"net/http"

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
	rg.GET("/classes", h.ListClasses)
	rg.GET("/classes-by-timezone", h.ListClassesByTimezone)
}

func (h *Handler) ListClasses(c *gin.Context) {
	data, err := h.service.ListClasses(c.Request.Context(), c.Query("timezone"))
	if err != nil {
		switch err {
		case ErrNoClasses:
			response.Error(c, http.StatusNotFound, "NO_DATA_FOUND", "No classes available")
		default:
			// Includes unknown timezones: this endpoint does not validate
			// the zone name, so conversion failures stay opaque.
			response.Internal(c)
		}
		return
	}

	response.OK(c, http.StatusOK, data)
}

func (h *Handler) ListClassesByTimezone(c *gin.Context) {
	data, err := h.service.ListClassesValidated(c.Request.Context(), c.Query("timezone"))
	if err != nil {
		switch err {
		case ErrInvalidTimezone:
			response.Error(c, http.StatusBadRequest, "INVALID_TIMEZONE", "Invalid timezone")
		case ErrNoClasses:
			response.Error(c, http.StatusNotFound, "NO_DATA_FOUND", "No classes available")
		default:
			response.Internal(c)
		}
		return
	}

	response.OK(c, http.StatusOK, data)
}
