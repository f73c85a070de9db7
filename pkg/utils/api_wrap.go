package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses. Unknown
// errors collapse to a generic 500 so internals never leak to the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAlreadyEnrolled):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "User already has an account",
			TraceID: traceID(c),
			Data:    gin.H{"hasAccount": true},
		})
	case errors.Is(err, ErrInvalidAmount):
		RespondError(c, http.StatusBadRequest, "Credit amount must be positive")
	case errors.Is(err, ErrSignatureMismatch):
		RespondError(c, http.StatusBadRequest, "Payment verification failed")
	case errors.Is(err, ErrGatewayError):
		log.Printf("Gateway error: %v", err)
		RespondError(c, http.StatusBadGateway, "Failed to create payment order")
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "User not authenticated")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrOrderNotFound):
		RespondError(c, http.StatusNotFound, "Payment order not found")
	case errors.Is(err, ErrMeetingNotFound):
		RespondError(c, http.StatusNotFound, "Meeting not found")
	case errors.Is(err, ErrTaskNotFound):
		RespondError(c, http.StatusNotFound, "Task not found")
	case errors.Is(err, ErrMemberNotFound):
		RespondError(c, http.StatusNotFound, "Team member not found")
	case errors.Is(err, ErrPersistenceError), errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
