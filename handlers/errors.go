package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/models"
	"salonbook/utils"
)

// writeServiceError maps the service error taxonomy onto HTTP responses.
// Validation failures are the caller's fault, conflicts are a distinct
// outcome, and gateway failures split into permission and transient cases.
func writeServiceError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var conflictErr *models.SlotConflictError
	var persistenceErr *models.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", validationErr.Error())
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, "Time slot already booked", conflictErr.Error())
	case errors.As(err, &persistenceErr):
		if persistenceErr.PermissionDenied {
			utils.JSONError(c, http.StatusForbidden, "Permission denied by persistence layer", persistenceErr.Error())
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Persistence failure", persistenceErr.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
