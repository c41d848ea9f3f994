// Package response maps service errors onto the wire contract: raw JSON
// bodies on success, {"detail": msg} with a real HTTP status on failure.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// OK writes data as-is with 200.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as-is with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ValidationError covers malformed input and duplicate email/mobile.
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Detail: message})
}

// AuthError covers unknown or invalid credentials.
func AuthError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Detail: message})
}

// NotFoundError covers missing referenced entities.
func NotFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Detail: message})
}

// StorageError covers an unreachable backing store (durable variant only).
func StorageError(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, ErrorBody{Detail: "storage unavailable"})
}

// ServerError covers everything else.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Detail: "internal server error"})
}
