package server

import (
	"github.com/gin-gonic/gin"
)

type ErrorCode string

const (
	ErrorCodeInvalidQuery     ErrorCode = "INVALID_QUERY"
	ErrorCodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"
	ErrorCodeTermNotFound     ErrorCode = "TERM_NOT_FOUND"
	ErrorCodeSearchFailed     ErrorCode = "SEARCH_FAILED"
	ErrorCodeReloadFailed     ErrorCode = "RELOAD_FAILED"
	ErrorCodeReloadDisabled   ErrorCode = "RELOAD_DISABLED"
)

type APIError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

func sendError(c *gin.Context, status int, code ErrorCode, message string) {
	c.AbortWithStatusJSON(status, APIError{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(requestIDKey),
	})
}
