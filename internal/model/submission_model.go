package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Submission is one imported job application. Rows are written once by the
// importer together with all of their children and never updated in place.
type Submission struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"type:text;not null" json:"name"`
	Email            string         `gorm:"type:text;not null" json:"email"`
	Phone            string         `gorm:"type:text;not null" json:"phone"`
	Location         string         `gorm:"type:text;not null;index" json:"location"`
	SubmittedAt      time.Time      `gorm:"type:timestamptz;not null;index" json:"submittedAt"`
	WorkAvailability pq.StringArray `gorm:"type:text[]" json:"workAvailability"`
	// Kept as json, not jsonb: salary extraction depends on the original key order.
	AnnualSalaryExpectation datatypes.JSON   `gorm:"type:json" json:"annualSalaryExpectation"`
	ImportBatchID           uuid.UUID        `gorm:"type:uuid;index" json:"importBatchId"`
	WorkExperiences         []WorkExperience `gorm:"constraint:OnDelete:CASCADE" json:"workExperiences"`
	Education               *Education       `gorm:"constraint:OnDelete:CASCADE" json:"education"`
	Skills                  []Skill          `gorm:"constraint:OnDelete:CASCADE" json:"skills"`
	CreatedAt               time.Time        `json:"createdAt"`
}

type WorkExperience struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SubmissionID uint   `gorm:"not null;index" json:"submissionId"`
	Company      string `gorm:"type:text;not null" json:"company"`
	RoleName     string `gorm:"type:text;not null" json:"roleName"`
}

type Education struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	SubmissionID uint     `gorm:"not null;uniqueIndex" json:"submissionId"`
	HighestLevel string   `gorm:"type:text;not null" json:"highestLevel"`
	Degrees      []Degree `gorm:"constraint:OnDelete:CASCADE" json:"degrees"`
}

// TableName keeps the plural gorm would otherwise derive as "educations".
func (Education) TableName() string {
	return "education"
}

type Degree struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	EducationID    uint   `gorm:"not null;index" json:"educationId"`
	Degree         string `gorm:"type:text;not null" json:"degree"`
	Subject        string `gorm:"type:text;not null" json:"subject"`
	School         string `gorm:"type:text;not null" json:"school"`
	GPA            string `gorm:"column:gpa;type:text;not null" json:"gpa"`
	StartDate      string `gorm:"type:text;not null" json:"startDate"`
	EndDate        string `gorm:"type:text;not null" json:"endDate"`
	OriginalSchool string `gorm:"type:text;not null" json:"originalSchool"`
	IsTop50        bool   `gorm:"column:is_top50;not null;default:false" json:"isTop50"`
	IsTop25        bool   `gorm:"column:is_top25;not null;default:false" json:"isTop25"`
}

type Skill struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SubmissionID uint   `gorm:"not null;index" json:"submissionId"`
	Name         string `gorm:"type:text;not null" json:"name"`
}

// HighestEducationLevel returns "" when the submission carries no education record.
func (s *Submission) HighestEducationLevel() string {
	if s.Education == nil {
		return ""
	}
	return s.Education.HighestLevel
}
