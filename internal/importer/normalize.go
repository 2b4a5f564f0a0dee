// Package importer turns uploaded submission records into rows ready to be
// created with all of their children.
package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/fadilmartias/submission-admin/internal/util"
	"github.com/lib/pq"
	"github.com/tidwall/gjson"
	"gorm.io/datatypes"
)

// NotAvailable replaces every blank or missing string field.
const NotAvailable = "N/A"

var submittedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RecordError locates a validation failure inside a batch.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// NormalizeBatch parses a JSON array of raw records. It stops at the first
// invalid record so that nothing from a bad file gets written.
func NormalizeBatch(data []byte) ([]model.Submission, error) {
	if !gjson.ValidBytes(data) {
		return nil, util.NewValidationError("", "file is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, util.NewValidationError("", "file must contain a JSON array of submissions")
	}

	records := root.Array()
	subs := make([]model.Submission, 0, len(records))
	for i, raw := range records {
		sub, err := Normalize(raw)
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Normalize maps one raw record onto a Submission and its children.
func Normalize(raw gjson.Result) (model.Submission, error) {
	if !raw.IsObject() {
		return model.Submission{}, util.NewValidationError("", "submission must be an object")
	}

	var sub model.Submission
	var err error
	fields := []struct {
		key string
		dst *string
	}{
		{"name", &sub.Name},
		{"email", &sub.Email},
		{"phone", &sub.Phone},
		{"location", &sub.Location},
	}
	for _, f := range fields {
		if *f.dst, err = stringOrNA(raw.Get(f.key), f.key); err != nil {
			return model.Submission{}, err
		}
	}

	if sub.SubmittedAt, err = parseSubmittedAt(raw.Get("submitted_at")); err != nil {
		return model.Submission{}, err
	}
	if sub.WorkAvailability, err = stringList(raw.Get("work_availability"), "work_availability"); err != nil {
		return model.Submission{}, err
	}
	if sub.AnnualSalaryExpectation, err = salaryDocument(raw.Get("annual_salary_expectation")); err != nil {
		return model.Submission{}, err
	}
	if sub.WorkExperiences, err = workExperiences(raw.Get("work_experiences")); err != nil {
		return model.Submission{}, err
	}
	if sub.Education, err = education(raw.Get("education")); err != nil {
		return model.Submission{}, err
	}
	if sub.Skills, err = skills(raw.Get("skills")); err != nil {
		return model.Submission{}, err
	}
	return sub, nil
}

// stringOrNA substitutes NotAvailable for null, missing and blank values.
// Non-blank values are kept as given.
func stringOrNA(v gjson.Result, field string) (string, error) {
	switch v.Type {
	case gjson.Null:
		return NotAvailable, nil
	case gjson.String:
		if strings.TrimSpace(v.Str) == "" {
			return NotAvailable, nil
		}
		return v.Str, nil
	case gjson.Number, gjson.True, gjson.False:
		return v.String(), nil
	default:
		return "", util.NewValidationError(field, "must be a string")
	}
}

func parseSubmittedAt(v gjson.Result) (time.Time, error) {
	if v.Type != gjson.String || strings.TrimSpace(v.Str) == "" {
		return time.Time{}, util.NewValidationError("submitted_at", "is required")
	}
	s := strings.TrimSpace(v.Str)
	for _, layout := range submittedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, util.NewValidationError("submitted_at", fmt.Sprintf("has an unrecognized timestamp %q", s))
}

func stringList(v gjson.Result, field string) (pq.StringArray, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return pq.StringArray{}, nil
	}
	if !v.IsArray() {
		return nil, util.NewValidationError(field, "must be an array of strings")
	}
	out := pq.StringArray{}
	for _, item := range v.Array() {
		if item.Type != gjson.String {
			return nil, util.NewValidationError(field, "must be an array of strings")
		}
		out = append(out, item.Str)
	}
	return out, nil
}

func salaryDocument(v gjson.Result) (datatypes.JSON, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return datatypes.JSON("{}"), nil
	}
	if !v.IsObject() {
		return nil, util.NewValidationError("annual_salary_expectation", "must be an object")
	}
	return datatypes.JSON(v.Raw), nil
}

func workExperiences(v gjson.Result) ([]model.WorkExperience, error) {
	if !v.IsArray() {
		return nil, util.NewValidationError("work_experiences", "must be an array")
	}
	out := make([]model.WorkExperience, 0, len(v.Array()))
	for i, item := range v.Array() {
		if !item.IsObject() {
			return nil, util.NewValidationError(fmt.Sprintf("work_experiences[%d]", i), "must be an object")
		}
		company, err := stringOrNA(item.Get("company"), "company")
		if err != nil {
			return nil, err
		}
		role, err := stringOrNA(item.Get("roleName"), "roleName")
		if err != nil {
			return nil, err
		}
		out = append(out, model.WorkExperience{Company: company, RoleName: role})
	}
	return out, nil
}

func education(v gjson.Result) (*model.Education, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsObject() {
		return nil, util.NewValidationError("education", "must be an object")
	}

	level, err := stringOrNA(v.Get("highest_level"), "highest_level")
	if err != nil {
		return nil, err
	}
	edu := &model.Education{HighestLevel: level, Degrees: []model.Degree{}}

	degrees := v.Get("degrees")
	if !degrees.Exists() || degrees.Type == gjson.Null {
		return edu, nil
	}
	if !degrees.IsArray() {
		return nil, util.NewValidationError("education.degrees", "must be an array")
	}
	for i, item := range degrees.Array() {
		if !item.IsObject() {
			return nil, util.NewValidationError(fmt.Sprintf("education.degrees[%d]", i), "must be an object")
		}
		d, err := degree(item)
		if err != nil {
			return nil, err
		}
		edu.Degrees = append(edu.Degrees, d)
	}
	return edu, nil
}

func degree(item gjson.Result) (model.Degree, error) {
	var d model.Degree
	var err error
	fields := []struct {
		key string
		dst *string
	}{
		{"degree", &d.Degree},
		{"subject", &d.Subject},
		{"school", &d.School},
		{"gpa", &d.GPA},
		{"startDate", &d.StartDate},
		{"endDate", &d.EndDate},
		{"originalSchool", &d.OriginalSchool},
	}
	for _, f := range fields {
		if *f.dst, err = stringOrNA(item.Get(f.key), f.key); err != nil {
			return model.Degree{}, err
		}
	}
	if d.IsTop50, err = flag(item.Get("isTop50"), "isTop50"); err != nil {
		return model.Degree{}, err
	}
	if d.IsTop25, err = flag(item.Get("isTop25"), "isTop25"); err != nil {
		return model.Degree{}, err
	}
	return d, nil
}

// flag defaults missing and null values to false.
func flag(v gjson.Result, field string) (bool, error) {
	switch v.Type {
	case gjson.Null:
		return false, nil
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	default:
		return false, util.NewValidationError(field, "must be a boolean")
	}
}

func skills(v gjson.Result) ([]model.Skill, error) {
	if !v.IsArray() {
		return nil, util.NewValidationError("skills", "must be an array")
	}
	out := make([]model.Skill, 0, len(v.Array()))
	for _, item := range v.Array() {
		name, err := stringOrNA(item, "skills")
		if err != nil {
			return nil, err
		}
		out = append(out, model.Skill{Name: name})
	}
	return out, nil
}
