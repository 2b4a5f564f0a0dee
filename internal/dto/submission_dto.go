package dto

import (
	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/fadilmartias/submission-admin/internal/response"
	"github.com/google/uuid"
)

type SubmissionPageDTO struct {
	Submissions []model.Submission   `json:"submissions"`
	Pagination  *response.Pagination `json:"pagination"`
}

type SubmissionCountDTO struct {
	Count int64 `json:"count"`
}

type ImportResultDTO struct {
	Message string    `json:"message"`
	Count   int       `json:"count"`
	BatchID uuid.UUID `json:"batchId"`
}
