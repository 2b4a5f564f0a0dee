package config

import (
	"os"
	"strings"
	"sync"
)

// DefaultEducationLevels is ordered lowest to highest.
var DefaultEducationLevels = []string{
	"High School Diploma",
	"Associate's Degree",
	"Bachelor's Degree",
	"Master's Degree",
	"Doctorate",
}

type FilterConfig struct {
	EducationLevels []string
}

var (
	filterConfig *FilterConfig
	filterOnce   sync.Once
)

// LoadFilterConfig reads FILTER_EDUCATION_LEVELS, a "|"-separated list kept
// in the order it is given.
func LoadFilterConfig() *FilterConfig {
	filterOnce.Do(func() {
		filterConfig = &FilterConfig{
			EducationLevels: splitList(os.Getenv("FILTER_EDUCATION_LEVELS"), DefaultEducationLevels),
		}
	})
	return filterConfig
}

func splitList(raw string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(raw, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}
