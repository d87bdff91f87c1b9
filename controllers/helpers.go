package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stylegenie-backend/services"
	"stylegenie-backend/utils"
)

// ownerEmail pulls the authenticated owner identity set by the auth
// middleware.
func ownerEmail(c *gin.Context) (string, bool) {
	email := c.GetString("ownerEmail")
	if email == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "Owner identity not found in context")
		return "", false
	}
	return email, true
}

// respondServiceError maps the service error taxonomy onto HTTP status
// codes. Store faults get a generic message; validation messages are
// safe to surface as-is.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, services.ErrExternalService):
		utils.RespondWithError(c, http.StatusBadGateway, "External service failed")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
