package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutely/internal/models/request_models"
	"minutely/internal/services"
	"minutely/pkg/utils"
)

type TeamController struct {
	teamService services.TeamServiceInterface
}

func NewTeamController(teamService services.TeamServiceInterface) *TeamController {
	return &TeamController{
		teamService: teamService,
	}
}

func (t *TeamController) ListMembers(c *gin.Context) {
	managerID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	members, err := t.teamService.ListMembers(c.Request.Context(), managerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "")
}

func (t *TeamController) CreateMember(c *gin.Context) {
	managerID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request_models.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	member, err := t.teamService.CreateMember(c.Request.Context(), managerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Team member added")
}

func (t *TeamController) UpdateMember(c *gin.Context) {
	managerID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request_models.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := t.teamService.UpdateMember(c.Request.Context(), managerID, c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Team member updated")
}

func (t *TeamController) DeleteMember(c *gin.Context) {
	managerID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := t.teamService.DeleteMember(c.Request.Context(), managerID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Team member removed")
}
