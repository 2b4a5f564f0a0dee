package repository

import (
	"context"
	"fmt"

	"github.com/fadilmartias/submission-admin/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// List loads every submission, most recent first, with all children attached.
// Rows sharing a submitted_at are ordered by id, newest row first.
func (r *SubmissionRepository) List(ctx context.Context) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.db.WithContext(ctx).
		Preload("WorkExperiences", orderByID).
		Preload("Education").
		Preload("Education.Degrees", orderByID).
		Preload("Skills", orderByID).
		Order("submitted_at DESC").
		Order("id DESC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}

// CreateBatch inserts all submissions and their children in one transaction.
func (r *SubmissionRepository) CreateBatch(ctx context.Context, subs []model.Submission) error {
	if len(subs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range subs {
			if err := tx.Create(&subs[i]).Error; err != nil {
				return fmt.Errorf("create submission %d: %w", i, err)
			}
		}
		return nil
	})
}

func (r *SubmissionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Submission{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return count, nil
}
