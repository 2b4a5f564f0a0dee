package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/submission-admin/internal/model"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

type SubmissionRepositoryInterface interface {
	List(ctx context.Context) ([]model.Submission, error)
	CreateBatch(ctx context.Context, subs []model.Submission) error
	Count(ctx context.Context) (int64, error)
}

type FilterRepositoryInterface interface {
	List(ctx context.Context) ([]model.SubmissionFilter, error)
	FindByID(ctx context.Context, id uint) (*model.SubmissionFilter, error)
	Create(ctx context.Context, f *model.SubmissionFilter) error
	Update(ctx context.Context, f *model.SubmissionFilter) error
	Delete(ctx context.Context, id uint) error
}
