package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"minutely/internal/services"
	"minutely/pkg/utils"
)

type CreditController struct {
	creditService services.CreditServiceInterface
}

func NewCreditController(creditService services.CreditServiceInterface) *CreditController {
	return &CreditController{
		creditService: creditService,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CreateTrial godoc
// @Summary Start the 14-day free trial
// @Description Enrolls the authenticated user and grants the trial credits
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trial [post]
func (ct *CreditController) CreateTrial(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	trial, err := ct.creditService.CreateTrial(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trial, "Trial account created successfully")
}

// GetBalance godoc
// @Summary Get the credit balance and trial status
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /credits [get]
func (ct *CreditController) GetBalance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	balance, err := ct.creditService.Balance(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, balance, "")
}

func (ct *CreditController) ListTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	txns, err := ct.creditService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "")
}

// CheckAccess godoc
// @Summary Check dashboard access
// @Description Access requires a positive balance and an unexpired trial
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /credits/access [get]
func (ct *CreditController) CheckAccess(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	decision, err := ct.creditService.CheckAccess(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, decision, "")
}
