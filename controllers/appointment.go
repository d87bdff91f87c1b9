package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stylegenie-backend/models"
	"stylegenie-backend/services"
	"stylegenie-backend/utils"
)

// AppointmentController fronts the locally persisted appointment
// tracker. Capture is an optional capability: when nil the dictation
// endpoint reports voice entry as unsupported instead of failing later.
type AppointmentController struct {
	Tracker *services.AppointmentTracker
	Capture services.SpeechCapture
}

func NewAppointmentController(tracker *services.AppointmentTracker, capture services.SpeechCapture) *AppointmentController {
	return &AppointmentController{Tracker: tracker, Capture: capture}
}

// CreateAppointment books a new appointment in the booked status.
func (ctl *AppointmentController) CreateAppointment(c *gin.Context) {
	var input services.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := ctl.Tracker.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// GetDashboard returns today's and upcoming appointments, the color
// history, and all running timers.
func (ctl *AppointmentController) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Tracker.Dashboard())
}

type updateStatusInput struct {
	Status models.Status `json:"status" binding:"required"`
}

// UpdateStatus moves an appointment between booked, completed and
// no-show.
func (ctl *AppointmentController) UpdateStatus(c *gin.Context) {
	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := ctl.Tracker.UpdateStatus(c.Param("id"), input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

type startTimerInput struct {
	Minutes int `json:"minutes" binding:"required"`
}

// StartTimer begins a processing timer for the appointment.
func (ctl *AppointmentController) StartTimer(c *gin.Context) {
	var input startTimerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := ctl.Tracker.StartTimer(c.Param("id"), input.Minutes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// ClearTimer removes the processing timer, finished or not.
func (ctl *AppointmentController) ClearTimer(c *gin.Context) {
	appt, err := ctl.Tracker.ClearTimer(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// Dictate transcribes the posted audio and appends the transcript to
// the appointment notes.
func (ctl *AppointmentController) Dictate(c *gin.Context) {
	if ctl.Capture == nil {
		utils.RespondWithError(c, http.StatusNotImplemented, "Voice capture is not supported on this server")
		return
	}

	transcript, err := ctl.Capture.Transcribe(c.Request.Context(), c.Request.Body)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "There was a problem with voice capture")
		return
	}

	appt, err := ctl.Tracker.AppendDictation(c.Param("id"), transcript)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// Summarize generates the summary and aftercare text from the
// appointment's notes and formula.
func (ctl *AppointmentController) Summarize(c *gin.Context) {
	appt, err := ctl.Tracker.Summarize(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// GetCapabilities reports which optional capabilities this server has,
// so the client can disable affordances up front.
func (ctl *AppointmentController) GetCapabilities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"voiceCapture": ctl.Capture != nil,
	})
}
