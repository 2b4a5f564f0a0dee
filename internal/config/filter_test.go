package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	fallback := []string{"a", "b"}

	assert.Equal(t, fallback, splitList("", fallback))
	assert.Equal(t, fallback, splitList(" | ", fallback))
	assert.Equal(t, []string{"Bachelor's Degree", "PhD"}, splitList(" Bachelor's Degree |PhD|", fallback))
}

func TestSplitListCopiesFallback(t *testing.T) {
	fallback := []string{"a", "b"}
	got := splitList("", fallback)
	got[0] = "z"
	assert.Equal(t, "a", fallback[0])
}
