package domain

import "errors"

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageServiceNotConfigured = "service not configured, please contact administrator"

	ErrTokenNotFound = errors.New("authorization token not found")
	ErrTokenInvalid  = errors.New("authorization token invalid")
	ErrTokenExpired  = errors.New("authorization token expired")

	ErrForbidden         = errors.New("access to this resource is not allowed")
	ErrInvalidResourceID = errors.New("invalid resource id format")

	ErrServiceNotConfigured = errors.New("service not configured")
)
