// Package filter narrows a snapshot of submissions with the criteria of a
// saved SubmissionFilter.
//
// Criteria are applied as predicate passes in a fixed order: location,
// salary, work availability, minimum education, skills. A pass only runs when
// its criterion is set, and each pass keeps the relative order of its input.
package filter

import (
	"log"
	"strconv"
	"strings"

	"github.com/fadilmartias/submission-admin/internal/model"
)

// Criteria is the typed view of a SubmissionFilter used by the passes.
// Empty strings and empty slices mean "not set". A salary bound of 0 does not
// switch the salary pass on by itself, but it is applied once the other bound
// has.
type Criteria struct {
	Location         string
	MinSalary        *int64
	MaxSalary        *int64
	WorkAvailability []string
	MinEducation     string
	Skills           []string
}

func CriteriaFromFilter(f *model.SubmissionFilter) Criteria {
	c := Criteria{
		MinSalary:        f.MinSalary,
		MaxSalary:        f.MaxSalary,
		WorkAvailability: f.WorkAvailability,
		Skills:           f.Skills,
	}
	if f.Location != nil {
		c.Location = *f.Location
	}
	if f.MinEducation != nil {
		c.MinEducation = *f.MinEducation
	}
	return c
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c.Location == "" &&
		!c.filtersSalary() &&
		len(c.WorkAvailability) == 0 &&
		c.MinEducation == "" &&
		len(c.Skills) == 0
}

func (c Criteria) filtersSalary() bool {
	return nonZero(c.MinSalary) || nonZero(c.MaxSalary)
}

func nonZero(v *int64) bool {
	return v != nil && *v != 0
}

type pass struct {
	name   string
	detail any
	keep   func(*model.Submission) bool
}

type Pipeline struct {
	ranker *Ranker
	debug  bool
	logger *log.Logger
}

type Option func(*Pipeline)

// WithDebug logs the size of the candidate set before and after every pass.
func WithDebug(debug bool) Option {
	return func(p *Pipeline) { p.debug = debug }
}

func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

func NewPipeline(ranker *Ranker, opts ...Option) *Pipeline {
	p := &Pipeline{ranker: ranker, logger: log.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Apply returns the submissions matching f. A nil filter returns the input
// as is. The input slice and its elements are never modified.
func (p *Pipeline) Apply(submissions []model.Submission, f *model.SubmissionFilter) []model.Submission {
	if f == nil {
		return submissions
	}
	return p.ApplyCriteria(submissions, CriteriaFromFilter(f))
}

func (p *Pipeline) ApplyCriteria(submissions []model.Submission, c Criteria) []model.Submission {
	p.debugf("Initial submissions count: %d", len(submissions))

	out := append([]model.Submission(nil), submissions...)
	for _, ps := range p.passes(c) {
		before := len(out)
		out = keepIf(out, ps.keep)
		p.debugf("%s filter: %v Before: %d After: %d", ps.name, ps.detail, before, len(out))
	}

	p.debugf("Final submissions count: %d", len(out))
	if out == nil {
		out = []model.Submission{}
	}
	return out
}

func (p *Pipeline) passes(c Criteria) []pass {
	var passes []pass

	if c.Location != "" {
		location := c.Location
		passes = append(passes, pass{
			name:   "Location",
			detail: location,
			keep: func(s *model.Submission) bool {
				return s.Location == location
			},
		})
	}

	if c.filtersSalary() {
		minSalary, maxSalary := c.MinSalary, c.MaxSalary
		passes = append(passes, pass{
			name:   "Salary",
			detail: salaryBounds{minSalary, maxSalary},
			keep: func(s *model.Submission) bool {
				salary, ok := ExtractSalary(s.AnnualSalaryExpectation)
				return ok && SalaryInRange(salary, minSalary, maxSalary)
			},
		})
	}

	if len(c.WorkAvailability) > 0 {
		wanted := make(map[string]struct{}, len(c.WorkAvailability))
		for _, label := range c.WorkAvailability {
			wanted[strings.ToLower(label)] = struct{}{}
		}
		passes = append(passes, pass{
			name:   "Work Availability",
			detail: c.WorkAvailability,
			keep: func(s *model.Submission) bool {
				for _, label := range s.WorkAvailability {
					if _, ok := wanted[strings.ToLower(label)]; ok {
						return true
					}
				}
				return false
			},
		})
	}

	if c.MinEducation != "" {
		minLevel := c.MinEducation
		passes = append(passes, pass{
			name:   "Education",
			detail: minLevel,
			keep: func(s *model.Submission) bool {
				return p.ranker.Meets(s.HighestEducationLevel(), minLevel)
			},
		})
	}

	if len(c.Skills) > 0 {
		wanted := make(map[string]struct{}, len(c.Skills))
		for _, skill := range c.Skills {
			wanted[skill] = struct{}{}
		}
		passes = append(passes, pass{
			name:   "Skills",
			detail: c.Skills,
			keep: func(s *model.Submission) bool {
				for _, skill := range s.Skills {
					if _, ok := wanted[skill.Name]; ok {
						return true
					}
				}
				return false
			},
		})
	}

	return passes
}

func keepIf(in []model.Submission, keep func(*model.Submission) bool) []model.Submission {
	var out []model.Submission
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

func (p *Pipeline) debugf(format string, args ...any) {
	if p.debug && p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

type salaryBounds struct {
	lo, hi *int64
}

func (b salaryBounds) String() string {
	return "{min: " + boundString(b.lo) + ", max: " + boundString(b.hi) + "}"
}

func boundString(v *int64) string {
	if v == nil {
		return "none"
	}
	return strconv.FormatInt(*v, 10)
}
