package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutely/internal/services"
	"minutely/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (d *DashboardController) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	summary, err := d.dashboardService.Summary(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "")
}
