package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/services/admin"
)

// AdminHandler exposes the administrative editor operations.
type AdminHandler struct {
	Editor admin.EditorService
}

func NewAdminHandler(editor admin.EditorService) *AdminHandler {
	return &AdminHandler{Editor: editor}
}

// AddService creates a new catalog service.
func (h *AdminHandler) AddService(c *gin.Context) {
	var input struct {
		Name     string  `json:"name"`
		Duration int     `json:"duration"`
		Price    float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	service, err := h.Editor.AddService(c.Request.Context(), input.Name, input.Duration, input.Price)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": service})
}

// DeleteService removes a catalog service by id.
func (h *AdminHandler) DeleteService(c *gin.Context) {
	if err := h.Editor.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// AddTimeSlot creates a new bookable slot value.
func (h *AdminHandler) AddTimeSlot(c *gin.Context) {
	var input struct {
		Slot string `json:"slot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Editor.AddTimeSlot(c.Request.Context(), input.Slot); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slot": input.Slot})
}

// DeleteTimeSlot removes every stored document holding the slot value.
func (h *AdminHandler) DeleteTimeSlot(c *gin.Context) {
	if err := h.Editor.DeleteTimeSlot(c.Request.Context(), c.Param("slot")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListBookings returns all submitted bookings for the admin dashboard.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Editor.Bookings(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
