package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in API error bodies.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeOwnershipMismatch = "OWNERSHIP_MISMATCH"
	CodeInternalError     = "INTERNAL_ERROR"
)

// ErrorBody is the uniform structure for API error responses. Success
// responses carry the resource itself, unwrapped.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Error writes a JSON error response with the given status and code.
func Error(ctx *gin.Context, status int, code, message string) {
	ctx.JSON(status, ErrorBody{Error: code, Message: message})
}

// NotFound returns a standard 404 response.
func NotFound(ctx *gin.Context, message string) {
	Error(ctx, http.StatusNotFound, CodeNotFound, message)
}

// ValidationError returns a standard 422 response for a malformed body.
func ValidationError(ctx *gin.Context, message string) {
	Error(ctx, http.StatusUnprocessableEntity, CodeValidationError, message)
}

// OwnershipMismatch returns a standard 400 response for an author mismatch.
func OwnershipMismatch(ctx *gin.Context) {
	Error(ctx, http.StatusBadRequest, CodeOwnershipMismatch, "username does not match the author")
}

// InternalError returns a standard 500 response.
func InternalError(ctx *gin.Context) {
	Error(ctx, http.StatusInternalServerError, CodeInternalError, "an unexpected error occurred")
}
