package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutely/internal/models/request_models"
	"minutely/internal/services"
	"minutely/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateOrder godoc
// @Summary Create a payment order for a credit plan
// @Description Opens a gateway order; works with or without authentication
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} utils.APIResponse
// @Router /payments/create-order [post]
func (p *PaymentController) CreateOrder(c *gin.Context) {
	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := p.paymentService.CreateOrder(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Order created successfully")
}

// VerifyPayment godoc
// @Summary Verify a payment callback and credit the account
// @Description Validates the gateway signature before any state change
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {
	var req request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := p.paymentService.VerifyPayment(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, resp.Message)
}
