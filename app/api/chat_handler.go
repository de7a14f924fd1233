package api

import (
	"github.com/gofiber/fiber/v2"

	"ragchat/app/agent"
	"ragchat/types"
)

type ChatHandler struct {
	agent *agent.Agent
}

func NewChatHandler(a *agent.Agent) *ChatHandler {
	return &ChatHandler{
		agent: a,
	}
}

// HandleChat answers POST /chat.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var params types.ChatParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewError(fiber.StatusBadRequest, "No question provided")
	}

	answer, err := h.agent.Ask(c.Context(), params.Question)
	if err != nil {
		return err
	}

	return c.JSON(answer)
}
