package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"minutely/internal/services"
	"minutely/pkg/utils"
)

type MeetingController struct {
	meetingService services.MeetingServiceInterface
	taskService    services.TaskServiceInterface
}

func NewMeetingController(meetingService services.MeetingServiceInterface, taskService services.TaskServiceInterface) *MeetingController {
	return &MeetingController{
		meetingService: meetingService,
		taskService:    taskService,
	}
}

func (m *MeetingController) ListMeetings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	meetings, err := m.meetingService.ListMeetings(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, meetings, "")
}

func (m *MeetingController) GetMeeting(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "meeting id is required")
		return
	}

	meeting, err := m.meetingService.GetMeeting(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, meeting, "")
}

func (m *MeetingController) ListMeetingTasks(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "meeting id is required")
		return
	}

	tasks, err := m.taskService.ListTasksByMeeting(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tasks, "")
}
