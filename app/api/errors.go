package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"ragchat/types"
)

// Error is the JSON shape every failed request resolves to.
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

// Error implements the error interface
func (e Error) Error() string {
	return e.Message
}

func NewError(code int, err string) Error {
	return Error{
		Code:    code,
		Message: err,
	}
}

func ErrBadRequest() Error {
	return Error{
		Code:    fiber.StatusBadRequest,
		Message: "invalid JSON request",
	}
}

// ErrorHandler maps pipeline errors onto status codes at the route
// boundary. Caller faults answer 400, everything else surfaces as a
// 500 with the error message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr Error
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Code).JSON(apiErr)
	}

	var valErr *types.ValidationError
	if errors.As(err, &valErr) {
		return c.Status(fiber.StatusBadRequest).JSON(Error{Message: valErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(Error{Message: fiberErr.Message})
	}

	log.Printf("request failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(Error{Message: err.Error()})
}
