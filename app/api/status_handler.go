package api

import (
	"github.com/gofiber/fiber/v2"

	"ragchat/index"
)

type StatusHandler struct {
	index *index.Index
}

func NewStatusHandler(ix *index.Index) *StatusHandler {
	return &StatusHandler{
		index: ix,
	}
}

// HandleStatus answers GET /status.
func (h *StatusHandler) HandleStatus(c *fiber.Ctx) error {
	if !h.index.Ready() {
		return c.JSON(fiber.Map{
			"status":         "No data indexed",
			"documentsCount": 0,
		})
	}

	return c.JSON(fiber.Map{
		"status":  "Ready",
		"message": "Vector store is initialized and ready for queries",
	})
}
