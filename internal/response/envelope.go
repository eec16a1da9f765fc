// Package response defines the JSON envelope every endpoint of the API
// answers with. Success and error payloads share one shape so clients
// can branch on the `success` flag alone; paginated listings attach a
// Meta block.
package response

import (
	"github.com/gofiber/fiber/v2"
)

// Machine-readable error codes clients are expected to switch on.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeValidation    = "VALIDATION_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

type StandardResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	Meta    *Meta        `json:"meta,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Meta describes the page window of a listing response.
type Meta struct {
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
	Total      int64 `json:"total,omitempty"`
	TotalPages int64 `json:"total_pages,omitempty"`
}

func ok(c *fiber.Ctx, status int, data interface{}, meta *Meta, message string) error {
	return c.Status(status).JSON(StandardResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Success(c *fiber.Ctx, data interface{}, message string) error {
	return ok(c, fiber.StatusOK, data, nil, message)
}

func SuccessWithMeta(c *fiber.Ctx, data interface{}, meta *Meta, message string) error {
	return ok(c, fiber.StatusOK, data, meta, message)
}

func Created(c *fiber.Ctx, data interface{}, message string) error {
	return ok(c, fiber.StatusCreated, data, nil, message)
}

// NoContent is used by deletes; it carries no envelope at all.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func Error(c *fiber.Ctx, status int, code, message string, details interface{}) error {
	return c.Status(status).JSON(StandardResponse{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequest(c *fiber.Ctx, message string, details interface{}) error {
	return Error(c, fiber.StatusBadRequest, CodeBadRequest, message, details)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, CodeForbidden, message, nil)
}

// NotFound takes the resource name, not a full message: "User" becomes
// "User not found".
func NotFound(c *fiber.Ctx, resource string) error {
	return Error(c, fiber.StatusNotFound, CodeNotFound, resource+" not found", nil)
}

func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, CodeConflict, message, nil)
}

// ValidationError reports field-level problems; details is a map of
// field name to requirement.
func ValidationError(c *fiber.Ctx, details interface{}) error {
	return Error(c, fiber.StatusUnprocessableEntity, CodeValidation, "Validation failed", details)
}

func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, CodeInternalError, message, nil)
}

func CalculateMeta(page, limit int, total int64) *Meta {
	return &Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}
}
