package handler

import (
	"strconv"

	"github.com/fadilmartias/submission-admin/internal/dto"
	"github.com/fadilmartias/submission-admin/internal/usecase"
	"github.com/fadilmartias/submission-admin/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SubmissionHandler struct {
	uc *usecase.SubmissionUsecase
}

func NewSubmissionHandler(uc *usecase.SubmissionUsecase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

func (h *SubmissionHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/submissions", h.List)
	router.Get("/submissions/count", h.Count)
}

// List serves GET /submissions?page=&pageSize=&filter=.
func (h *SubmissionHandler) List(c *fiber.Ctx) error {
	page, pageSize := util.ParsePageParams(c.Query("page"), c.Query("pageSize"))
	params := usecase.ListParams{Page: page, PageSize: pageSize}

	if raw := c.Query("filter"); raw != "" {
		id, err := parseID(raw, "filter")
		if err != nil {
			return failure(c, "Failed to fetch submissions", err)
		}
		params.FilterID = &id
	}

	result, err := h.uc.List(c.UserContext(), params)
	if err != nil {
		return failure(c, "Failed to fetch submissions", err)
	}

	pagination := result.Pagination()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get submissions",
		Data: dto.SubmissionPageDTO{
			Submissions: result.Items,
			Pagination:  pagination,
		},
		Pagination: pagination,
	})
}

func (h *SubmissionHandler) Count(c *fiber.Ctx) error {
	count, err := h.uc.Count(c.UserContext())
	if err != nil {
		return failure(c, "Error counting submissions", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success count submissions",
		Data:    dto.SubmissionCountDTO{Count: count},
	})
}

func parseUint(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 0)
	return uint(n), err
}
