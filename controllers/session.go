package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stylegenie-backend/storage"
	"stylegenie-backend/utils"
)

// SessionController exposes the locally stored pro flag and the cached
// owner email used only to restore the session display after a reload.
type SessionController struct {
	Store *storage.SessionStore
}

func NewSessionController(store *storage.SessionStore) *SessionController {
	return &SessionController{Store: store}
}

func (ctl *SessionController) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"proActive":   ctl.Store.ProStatus(),
		"cachedEmail": ctl.Store.CachedEmail(),
	})
}

type proStatusInput struct {
	Active *bool `json:"active" binding:"required"`
}

func (ctl *SessionController) UpdateProStatus(c *gin.Context) {
	var input proStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ctl.Store.SetProStatus(*input.Active); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update pro status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"proActive": ctl.Store.ProStatus()})
}
