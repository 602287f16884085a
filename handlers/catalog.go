package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/services/catalog"
)

// CatalogHandler serves the public catalog views.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(cat catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// ListServices returns the current service catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.Services()})
}

// ListTimeSlots returns the bookable time slot values.
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": h.Catalog.TimeSlots()})
}
