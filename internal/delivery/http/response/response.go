// Package response writes the storefront's JSON envelopes: every body carries a "success" flag,
// failures add a "message".
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Failure is the body of every rejected request.
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Success writes 200 with success=true merged into fields.
func Success(c echo.Context, fields echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}

	return c.JSON(http.StatusOK, body)
}

// Message writes 200 {success:true,message}.
func Message(c echo.Context, message string) error {
	return Success(c, echo.Map{"message": message})
}

// Error writes {success:false,message} with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Failure{Success: false, Message: message})
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// TooManyRequests 429 error
func TooManyRequests(c echo.Context) error {
	return Error(c, http.StatusTooManyRequests, "Too many requests")
}
