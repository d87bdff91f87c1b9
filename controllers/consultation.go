package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stylegenie-backend/services"
	"stylegenie-backend/utils"
)

// ConsultationFormInput carries the current session's field values.
type ConsultationFormInput struct {
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ClientEmail string `json:"clientEmail"`
	ServiceType string `json:"serviceType"`
	VoiceNotes  string `json:"voiceNotes"`
	CutDetails  string `json:"cutDetails"`
	Formulas    string `json:"formulas"`
	Aftercare   string `json:"aftercare"`
	Goals       string `json:"goals"`
	ExtraNotes  string `json:"extraNotes"`
}

func (in ConsultationFormInput) toForm() services.ConsultationForm {
	return services.ConsultationForm{
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ClientEmail: in.ClientEmail,
		ServiceType: in.ServiceType,
		VoiceNotes:  in.VoiceNotes,
		CutDetails:  in.CutDetails,
		Formulas:    in.Formulas,
		Aftercare:   in.Aftercare,
		Goals:       in.Goals,
		ExtraNotes:  in.ExtraNotes,
	}
}

// ConsultationController fronts the client memory resolver.
type ConsultationController struct {
	Memory *services.MemoryService
}

func NewConsultationController(memory *services.MemoryService) *ConsultationController {
	return &ConsultationController{Memory: memory}
}

// Prefill merges stored client memory into the typed form, never
// overwriting non-empty fields. Calls are debounced per owner: a request
// superseded by newer input answers 204 and its result is discarded.
func (ctl *ConsultationController) Prefill(c *gin.Context) {
	owner, ok := ownerEmail(c)
	if !ok {
		return
	}

	var input ConsultationFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := strings.TrimSpace(input.ClientName)
	if len([]rune(name)) < 2 {
		utils.RespondWithError(c, http.StatusBadRequest, "Type at least 2 characters of the client name")
		return
	}

	result, err := ctl.Memory.PrefillDebounced(c.Request.Context(), owner, name, input.toForm())
	if err != nil {
		if errors.Is(err, services.ErrSuperseded) {
			c.Status(http.StatusNoContent)
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":     result.Found,
		"form":      result.Form,
		"lastVisit": result.LastVisit,
	})
}

// SaveAndGenerate runs the primary write transaction and returns both
// generated documents plus the refreshed last-visit record.
func (ctl *ConsultationController) SaveAndGenerate(c *gin.Context) {
	owner, ok := ownerEmail(c)
	if !ok {
		return
	}

	var input ConsultationFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result, err := ctl.Memory.SaveAndGenerate(owner, input.toForm())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client":        result.Client,
		"clientSummary": result.ClientSummary,
		"stylistSheet":  result.StylistSheet,
		"lastVisit":     result.LastVisit,
	})
}
