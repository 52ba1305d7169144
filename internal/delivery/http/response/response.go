// Package response defines the JSON envelopes shared by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ishop/internal/domain/repository"
)

// Envelope is the single-document success shape.
type Envelope struct {
	Data any `json:"data"`
}

// ListEnvelope is the collection success shape. Results counts the
// returned page, not the filtered total; the pagination block carries the
// page math.
type ListEnvelope struct {
	Results          int                    `json:"results"`
	PaginationResult *repository.Pagination `json:"paginationResult,omitempty"`
	Data             any                    `json:"data"`
}

// MessageEnvelope is used by operations whose outcome is a statement
// rather than a document (code sent, item removed, ...).
type MessageEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// AuthEnvelope carries a document plus the session token that goes with it.
type AuthEnvelope struct {
	Data  any    `json:"data"`
	Token string `json:"token"`
}

// ErrorEnvelope is the uniform failure shape.
type ErrorEnvelope struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage"`
	Details      string `json:"details,omitempty"`
}

// OK writes a 200 single-document response.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Data: data})
}

// Created writes a 201 single-document response.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Envelope{Data: data})
}

// List writes a 200 collection response with pagination metadata.
func List(c echo.Context, results int, pagination *repository.Pagination, data any) error {
	return c.JSON(http.StatusOK, ListEnvelope{
		Results:          results,
		PaginationResult: pagination,
		Data:             data,
	})
}

// Message writes a 200 message response.
func Message(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, MessageEnvelope{Message: message, Data: data})
}

// Auth writes a success response carrying a session token.
func Auth(c echo.Context, statusCode int, data any, token string) error {
	return c.JSON(statusCode, AuthEnvelope{Data: data, Token: token})
}

// NoContent writes a 204 response for deletions.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Fail writes the uniform error envelope.
func Fail(c echo.Context, statusCode int, errorMessage, details string) error {
	return c.JSON(statusCode, ErrorEnvelope{
		Status:       "fail",
		ErrorMessage: errorMessage,
		Details:      details,
	})
}
