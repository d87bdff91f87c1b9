// controllers/service_template.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stylegenie-backend/models"
)

// TemplateController serves the built-in service templates used to
// pre-fill new appointments.
type TemplateController struct{}

// GetServiceTemplates lists every template with its default formula,
// default notes and rebook interval.
func (TemplateController) GetServiceTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceTemplates)
}
