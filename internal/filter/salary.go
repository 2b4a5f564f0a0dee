package filter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
)

const fullTimeKey = "full-time"

// SalaryText picks the expectation to compare against: the "full-time" entry,
// or the first entry of the document when that one is missing or empty.
func SalaryText(raw []byte) string {
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return ""
	}

	var first, fullTime string
	seen := false
	doc.ForEach(func(key, value gjson.Result) bool {
		if !seen {
			first = salaryScalar(value)
			seen = true
		}
		if key.String() == fullTimeKey && fullTime == "" {
			fullTime = salaryScalar(value)
		}
		return true
	})
	if fullTime != "" {
		return fullTime
	}
	return first
}

func salaryScalar(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	default:
		return ""
	}
}

// ParseSalary strips "$", "," and whitespace, then reads the leading base-10
// integer. Trailing garbage after the digits is ignored ("120000USD" is 120000).
func ParseSalary(text string) (int64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '$' || r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	end := 0
	if end < len(cleaned) && (cleaned[end] == '-' || cleaned[end] == '+') {
		end++
	}
	digits := end
	for end < len(cleaned) && cleaned[end] >= '0' && cleaned[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(cleaned[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractSalary combines SalaryText and ParseSalary.
func ExtractSalary(raw []byte) (int64, bool) {
	text := SalaryText(raw)
	if text == "" {
		return 0, false
	}
	return ParseSalary(text)
}

// SalaryInRange applies inclusive bounds; a nil bound is open.
func SalaryInRange(salary int64, minSalary, maxSalary *int64) bool {
	if minSalary != nil && salary < *minSalary {
		return false
	}
	if maxSalary != nil && salary > *maxSalary {
		return false
	}
	return true
}
