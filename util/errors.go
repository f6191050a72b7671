package util

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError carries the HTTP status code a failure maps to.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// ValidationError reports missing or malformed input.
func ValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

// NotFoundError reports an absent referenced entity.
func NotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

// AuthError reports missing or invalid credentials.
func AuthError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

// ConflictError reports a slot that is already booked. The original API
// surfaces this as a 400, so the code stays 400 rather than 409.
func ConflictError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

// StoreError wraps an underlying database failure.
func StoreError(err error) *AppError {
	log.Println("Store error:", err)
	return NewAppError(http.StatusInternalServerError, "Internal server error")
}

// WriteError maps an error onto the response. Unknown error types are
// treated as unhandled store failures.
func WriteError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	log.Println("Unhandled error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
