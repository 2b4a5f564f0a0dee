package handler

import (
	"errors"
	"log"

	"github.com/fadilmartias/submission-admin/internal/repository"
	"github.com/fadilmartias/submission-admin/internal/util"
	"github.com/gofiber/fiber/v2"
)

// failure logs err and answers with the error envelope. Validation problems
// map to 400, missing rows to 404 and everything else to 500.
func failure(c *fiber.Ctx, message string, err error) error {
	params := util.ErrorResponseFormat{
		Code:    fiber.StatusInternalServerError,
		Message: message,
	}

	var formErr *util.FormError
	var validationErr *util.ValidationError
	switch {
	case errors.As(err, &formErr):
		params.Code = fiber.StatusBadRequest
		params.Details = formErr.Errors
	case errors.As(err, &validationErr):
		params.Code = fiber.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		params.Code = fiber.StatusNotFound
	}

	log.Printf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	return util.ErrorResponse(c, params, err)
}

func parseID(raw, field string) (uint, error) {
	id, err := parseUint(raw)
	if err != nil || id == 0 {
		return 0, util.NewValidationError(field, "must be a positive integer")
	}
	return id, nil
}
