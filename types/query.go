package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type ChatParams struct {
	Question string `json:"question" validate:"required"`
}

type TextParams struct {
	Text string `json:"text" validate:"required"`
}

type WebsiteParams struct {
	URL string `json:"url" validate:"required"`
}

// Validate runs struct tag validation and returns field errors, nil
// when the params are fine.
func Validate(params any) map[string]string {
	validate := validator.New()
	if err := validate.Struct(params); err != nil {
		errs := err.(validator.ValidationErrors)
		errors := make(map[string]string)
		for _, e := range errs {
			errors[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return errors
	}
	return nil
}
