package utils

import "errors"

var (
	ErrAlreadyEnrolled    = errors.New("user already has a credit account")
	ErrInvalidAmount      = errors.New("credit amount must be positive")
	ErrDuplicateGrant     = errors.New("credits already granted for this payment")
	ErrGatewayError       = errors.New("payment gateway request failed")
	ErrSignatureMismatch  = errors.New("payment signature verification failed")
	ErrOrderNotFound      = errors.New("payment order not found")
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrPersistenceError   = errors.New("data store write failed")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrMemberNotFound     = errors.New("team member not found")
	ErrDatabaseError      = errors.New("database error")
)
