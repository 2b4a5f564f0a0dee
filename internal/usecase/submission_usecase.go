package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/fadilmartias/submission-admin/internal/filter"
	"github.com/fadilmartias/submission-admin/internal/importer"
	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/fadilmartias/submission-admin/internal/repository"
	"github.com/fadilmartias/submission-admin/internal/util"
	"github.com/google/uuid"
)

type SubmissionUsecase struct {
	submissionRepo repository.SubmissionRepositoryInterface
	filterRepo     repository.FilterRepositoryInterface
	pipeline       *filter.Pipeline
}

func NewSubmissionUsecase(submissionRepo repository.SubmissionRepositoryInterface, filterRepo repository.FilterRepositoryInterface, pipeline *filter.Pipeline) *SubmissionUsecase {
	return &SubmissionUsecase{submissionRepo: submissionRepo, filterRepo: filterRepo, pipeline: pipeline}
}

type ListParams struct {
	Page     int
	PageSize int
	// FilterID is nil when no saved filter is applied.
	FilterID *uint
}

// List loads the full snapshot, narrows it with the saved filter if one is
// named, and returns the requested page.
func (uc *SubmissionUsecase) List(ctx context.Context, params ListParams) (util.Page[model.Submission], error) {
	var f *model.SubmissionFilter
	if params.FilterID != nil {
		found, err := uc.filterRepo.FindByID(ctx, *params.FilterID)
		if err != nil {
			return util.Page[model.Submission]{}, err
		}
		f = found
	}

	subs, err := uc.submissionRepo.List(ctx)
	if err != nil {
		return util.Page[model.Submission]{}, err
	}

	return util.Paginate(uc.pipeline.Apply(subs, f), params.Page, params.PageSize), nil
}

func (uc *SubmissionUsecase) Count(ctx context.Context) (int64, error) {
	return uc.submissionRepo.Count(ctx)
}

type ImportResult struct {
	BatchID uuid.UUID
	Count   int
}

// Import normalizes every record of an uploaded file before writing anything,
// then stores the whole batch atomically.
func (uc *SubmissionUsecase) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	subs, err := importer.NormalizeBatch(data)
	if err != nil {
		return nil, err
	}

	batchID := uuid.New()
	for i := range subs {
		subs[i].ImportBatchID = batchID
	}
	if err := uc.submissionRepo.CreateBatch(ctx, subs); err != nil {
		return nil, fmt.Errorf("import batch %s: %w", batchID, err)
	}

	log.Printf("Imported %d submissions (batch %s)", len(subs), batchID)
	return &ImportResult{BatchID: batchID, Count: len(subs)}, nil
}
