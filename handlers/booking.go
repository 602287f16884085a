package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/services/booking"
	"salonbook/services/catalog"
)

// BookingHandler exposes the booking admission engine.
type BookingHandler struct {
	Admission booking.AdmissionService
	Catalog   catalog.CatalogService
	Logger    *zap.Logger
}

func NewBookingHandler(admission booking.AdmissionService, cat catalog.CatalogService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Admission: admission, Catalog: cat, Logger: logger}
}

// CreateBooking resolves the selected service ids against the catalog and
// submits the request to the admission engine. Field-level validation is the
// engine's job so every rejection flows through the same error taxonomy.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		Name       string   `json:"name"`
		Phone      string   `json:"phone"`
		ServiceIDs []string `json:"serviceIds"`
		Date       string   `json:"date"`
		Time       string   `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	selected, err := h.Catalog.ServicesByIDs(input.ServiceIDs)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	created, err := h.Admission.SubmitBooking(c.Request.Context(), booking.BookingRequest{
		CustomerName:  input.Name,
		CustomerPhone: input.Phone,
		Services:      selected,
		Date:          input.Date,
		Time:          input.Time,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.Logger.Info("booking created",
		zap.String("id", created.ID),
		zap.String("date", created.Date),
		zap.String("time", created.Time))
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}
