package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/submission-admin/internal/model"
	"gorm.io/gorm"
)

type FilterRepository struct {
	db *gorm.DB
}

func NewFilterRepository(db *gorm.DB) *FilterRepository {
	return &FilterRepository{db}
}

func (r *FilterRepository) List(ctx context.Context) ([]model.SubmissionFilter, error) {
	var filters []model.SubmissionFilter
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&filters).Error
	if err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}
	return filters, nil
}

func (r *FilterRepository) FindByID(ctx context.Context, id uint) (*model.SubmissionFilter, error) {
	var f model.SubmissionFilter
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find filter %d: %w", id, err)
	}
	return &f, nil
}

func (r *FilterRepository) Create(ctx context.Context, f *model.SubmissionFilter) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("create filter: %w", err)
	}
	return nil
}

// Update replaces every editable column of an existing filter, including the
// ones being cleared, and reloads the stored row into f.
func (r *FilterRepository) Update(ctx context.Context, f *model.SubmissionFilter) error {
	res := r.db.WithContext(ctx).
		Model(&model.SubmissionFilter{ID: f.ID}).
		Select("name", "description", "location", "min_salary", "max_salary",
			"work_availability", "min_education", "skills", "updated_at").
		Updates(f)
	if res.Error != nil {
		return fmt.Errorf("update filter %d: %w", f.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if err := r.db.WithContext(ctx).First(f, "id = ?", f.ID).Error; err != nil {
		return fmt.Errorf("reload filter %d: %w", f.ID, err)
	}
	return nil
}

func (r *FilterRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.SubmissionFilter{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete filter %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
