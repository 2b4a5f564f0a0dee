package handler

import (
	"github.com/fadilmartias/submission-admin/internal/dto"
	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/fadilmartias/submission-admin/internal/usecase"
	"github.com/fadilmartias/submission-admin/internal/util"
	"github.com/gofiber/fiber/v2"
)

type FilterHandler struct {
	uc *usecase.FilterUsecase
}

func NewFilterHandler(uc *usecase.FilterUsecase) *FilterHandler {
	return &FilterHandler{uc: uc}
}

func (h *FilterHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/submissions/filters", h.List)
	router.Post("/submissions/filters", h.Create)
	router.Get("/submissions/filters/:id", h.Get)
	router.Put("/submissions/filters/:id", h.Update)
	router.Delete("/submissions/filters/:id", h.Delete)
}

func (h *FilterHandler) List(c *fiber.Ctx) error {
	filters, err := h.uc.List(c.UserContext())
	if err != nil {
		return failure(c, "Failed to fetch filters", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get filters",
		Data:    filters,
	})
}

func (h *FilterHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id")
	if err != nil {
		return failure(c, "Failed to fetch filter", err)
	}
	f, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return failure(c, "Failed to fetch filter", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get filter",
		Data:    f,
	})
}

func (h *FilterHandler) Create(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, "Failed to create filter", util.NewValidationError("body", "must be a JSON filter"))
	}
	f, err := h.uc.Create(c.UserContext(), req.ToModel())
	if err != nil {
		return failure(c, "Failed to create filter", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create filter",
		Data:    f,
	})
}

// Update serves PUT /submissions/filters/:id. Keys missing from the body
// keep their stored value; a null clears the field.
func (h *FilterHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id")
	if err != nil {
		return failure(c, "Failed to update filter", err)
	}
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, "Failed to update filter", util.NewValidationError("body", "must be a JSON filter"))
	}
	fields := dto.FilterFields(c.Body())
	f, err := h.uc.Update(c.UserContext(), id, func(stored *model.SubmissionFilter) {
		req.MergeInto(stored, fields)
	})
	if err != nil {
		return failure(c, "Failed to update filter", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update filter",
		Data:    f,
	})
}

func (h *FilterHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id")
	if err != nil {
		return failure(c, "Failed to delete filter", err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return failure(c, "Failed to delete filter", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete filter",
		Data:    fiber.Map{"success": true},
	})
}
