package model

import (
	"time"

	"github.com/lib/pq"
)

// SubmissionFilter is a saved set of criteria. Nil or empty fields impose no constraint.
type SubmissionFilter struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"type:text;not null" json:"name"`
	Description      *string        `gorm:"type:text" json:"description"`
	Location         *string        `gorm:"type:text" json:"location"`
	MinSalary        *int64         `json:"minSalary"`
	MaxSalary        *int64         `json:"maxSalary"`
	WorkAvailability pq.StringArray `gorm:"type:text[]" json:"workAvailability"`
	MinEducation     *string        `gorm:"type:text" json:"minEducation"`
	Skills           pq.StringArray `gorm:"type:text[]" json:"skills"`
	CreatedAt        time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}
