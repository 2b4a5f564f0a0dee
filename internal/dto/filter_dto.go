package dto

import (
	"strings"

	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/lib/pq"
	"github.com/tidwall/gjson"
)

// FilterRequest is the body accepted by the create and update filter endpoints.
type FilterRequest struct {
	Name             string   `json:"name"`
	Description      *string  `json:"description"`
	Location         *string  `json:"location"`
	MinSalary        *int64   `json:"minSalary"`
	MaxSalary        *int64   `json:"maxSalary"`
	WorkAvailability []string `json:"workAvailability"`
	MinEducation     *string  `json:"minEducation"`
	Skills           []string `json:"skills"`
}

// ToModel trims the name, turns empty optional strings into nil and drops
// blank list entries. Location and skills are otherwise kept as typed since
// they are matched exactly.
func (r FilterRequest) ToModel() model.SubmissionFilter {
	return model.SubmissionFilter{
		Name:             strings.TrimSpace(r.Name),
		Description:      optional(r.Description),
		Location:         optional(r.Location),
		MinSalary:        r.MinSalary,
		MaxSalary:        r.MaxSalary,
		WorkAvailability: compact(r.WorkAvailability),
		MinEducation:     optional(r.MinEducation),
		Skills:           compact(r.Skills),
	}
}

// FilterFields returns the filter keys present in a JSON request body. An
// explicit null counts as present and clears the field.
func FilterFields(body []byte) map[string]bool {
	fields := map[string]bool{}
	gjson.ParseBytes(body).ForEach(func(key, _ gjson.Result) bool {
		fields[key.String()] = true
		return true
	})
	return fields
}

// MergeInto copies the fields named in fields onto f, normalized the same
// way as ToModel. Everything else on f is left untouched.
func (r FilterRequest) MergeInto(f *model.SubmissionFilter, fields map[string]bool) {
	m := r.ToModel()
	if fields["name"] {
		f.Name = m.Name
	}
	if fields["description"] {
		f.Description = m.Description
	}
	if fields["location"] {
		f.Location = m.Location
	}
	if fields["minSalary"] {
		f.MinSalary = m.MinSalary
	}
	if fields["maxSalary"] {
		f.MaxSalary = m.MaxSalary
	}
	if fields["workAvailability"] {
		f.WorkAvailability = m.WorkAvailability
	}
	if fields["minEducation"] {
		f.MinEducation = m.MinEducation
	}
	if fields["skills"] {
		f.Skills = m.Skills
	}
}

func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func compact(in []string) pq.StringArray {
	out := pq.StringArray{}
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
