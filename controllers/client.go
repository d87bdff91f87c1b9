package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stylegenie-backend/models"
	"stylegenie-backend/repos"
	"stylegenie-backend/utils"
)

// ClientController lists the owner's saved clients.
type ClientController struct {
	Clients *repos.ClientRepo
}

func NewClientController(clients *repos.ClientRepo) *ClientController {
	return &ClientController{Clients: clients}
}

type clientView struct {
	models.Client
	DaysSinceLastVisit *int `json:"daysSinceLastVisit"`
}

// GetClients retrieves all clients for the owner with how long ago each
// was last seen.
func (ctl *ClientController) GetClients(c *gin.Context) {
	owner, ok := ownerEmail(c)
	if !ok {
		return
	}

	clients, err := ctl.Clients.ListForOwner(owner)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	now := time.Now()
	views := make([]clientView, 0, len(clients))
	for _, client := range clients {
		v := clientView{Client: client}
		if client.LastVisit != nil {
			days := utils.DaysBetween(*client.LastVisit, now)
			v.DaysSinceLastVisit = &days
		}
		views = append(views, v)
	}

	c.JSON(http.StatusOK, views)
}
