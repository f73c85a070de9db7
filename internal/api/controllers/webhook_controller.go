package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutely/internal/models/request_models"
	"minutely/internal/services"
	"minutely/pkg/utils"
)

type WebhookController struct {
	webhookService services.WebhookServiceInterface
}

func NewWebhookController(webhookService services.WebhookServiceInterface) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
	}
}

// IngestMeeting godoc
// @Summary Ingest a processed meeting from the automation pipeline
// @Description Stores the meeting, its extracted tasks and unseen participants
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param request body request_models.MeetingWebhookRequest true "Meeting payload"
// @Success 200 {object} response_models.WebhookIngestResponse
// @Failure 500 {object} utils.APIResponse
// @Router /webhooks/meetings [post]
func (w *WebhookController) IngestMeeting(c *gin.Context) {
	var req request_models.MeetingWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if req.EventID == "" {
		req.EventID = c.GetHeader("X-Event-Id")
	}

	resp, err := w.webhookService.Ingest(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// The pipeline consumes the raw shape, not the APIResponse envelope.
	c.JSON(http.StatusOK, resp)
}
