package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutely/internal/models/request_models"
	"minutely/internal/services"
	"minutely/pkg/utils"
)

type TaskController struct {
	taskService services.TaskServiceInterface
}

func NewTaskController(taskService services.TaskServiceInterface) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// UpdateStatus godoc
// @Summary Update a task's status
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body request_models.UpdateTaskStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tasks/{id}/status [patch]
func (t *TaskController) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "task id is required")
		return
	}

	var req request_models.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := t.taskService.UpdateTaskStatus(c.Request.Context(), id, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Task status updated")
}
