package handler

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/submission-admin/internal/dto"
	"github.com/fadilmartias/submission-admin/internal/middleware"
	"github.com/fadilmartias/submission-admin/internal/usecase"
	"github.com/fadilmartias/submission-admin/internal/util"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uc        *usecase.SubmissionUsecase
	maxBytes  int64
	rateLimit int
}

func NewUploadHandler(uc *usecase.SubmissionUsecase, maxBytes int64, rateLimit int) *UploadHandler {
	return &UploadHandler{uc: uc, maxBytes: maxBytes, rateLimit: rateLimit}
}

func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload", middleware.RateLimiter(h.rateLimit, 1*time.Minute), h.Upload)
}

// Upload serves POST /upload with a multipart "file" holding a JSON array of
// raw submissions.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "No file provided",
		}, err)
	}
	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != "" && ext != ".json" {
		return failure(c, "Error processing file", util.NewValidationError("file", fmt.Sprintf("unsupported file type %s", ext)))
	}
	if h.maxBytes > 0 && file.Size > h.maxBytes {
		return failure(c, "Error processing file", util.NewValidationError("file", fmt.Sprintf("is too large (max %d bytes)", h.maxBytes)))
	}

	f, err := file.Open()
	if err != nil {
		return failure(c, "Error processing file", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return failure(c, "Error processing file", err)
	}

	result, err := h.uc.Import(c.UserContext(), data)
	if err != nil {
		return failure(c, "Error processing file", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "File processed successfully",
		Data: dto.ImportResultDTO{
			Message: "File processed successfully",
			Count:   result.Count,
			BatchID: result.BatchID,
		},
	})
}
