package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/submission-admin/internal/filter"
	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/fadilmartias/submission-admin/internal/repository"
	"github.com/fadilmartias/submission-admin/internal/util"
)

type FilterUsecase struct {
	repo   repository.FilterRepositoryInterface
	ranker *filter.Ranker
}

func NewFilterUsecase(repo repository.FilterRepositoryInterface, ranker *filter.Ranker) *FilterUsecase {
	return &FilterUsecase{repo: repo, ranker: ranker}
}

func (uc *FilterUsecase) List(ctx context.Context) ([]model.SubmissionFilter, error) {
	return uc.repo.List(ctx)
}

func (uc *FilterUsecase) Get(ctx context.Context, id uint) (*model.SubmissionFilter, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *FilterUsecase) Create(ctx context.Context, f model.SubmissionFilter) (*model.SubmissionFilter, error) {
	if err := uc.validate(&f); err != nil {
		return nil, err
	}
	f.ID = 0
	if err := uc.repo.Create(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Update loads the stored filter, lets change edit it and saves the result.
// Fields change leaves alone keep their stored value.
func (uc *FilterUsecase) Update(ctx context.Context, id uint, change func(*model.SubmissionFilter)) (*model.SubmissionFilter, error) {
	f, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	change(f)
	f.ID = id
	if err := uc.validate(f); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (uc *FilterUsecase) Delete(ctx context.Context, id uint) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *FilterUsecase) validate(f *model.SubmissionFilter) error {
	errs := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "name is required"
	}
	if f.MinSalary != nil && f.MaxSalary != nil && *f.MinSalary > *f.MaxSalary {
		errs["maxSalary"] = "maxSalary must not be lower than minSalary"
	}
	if f.MinEducation != nil && uc.ranker.Rank(*f.MinEducation) == filter.Unranked {
		errs["minEducation"] = "unknown education level, expected one of: " + strings.Join(uc.ranker.Levels(), ", ")
	}
	if len(errs) > 0 {
		return util.NewFormError("invalid filter", errs)
	}
	return nil
}
