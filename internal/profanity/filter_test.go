package profanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoAwayFilterMasksDisallowedWords(t *testing.T) {
	f := New()

	cleaned := f.Clean("shit bridge")
	assert.NotContains(t, cleaned, "shit")
	assert.Contains(t, cleaned, "bridge")
}

func TestGoAwayFilterLeavesCleanTextAlone(t *testing.T) {
	f := New()

	assert.Equal(t, "Highway 7 Expansion", f.Clean("Highway 7 Expansion"))
}

func TestNoopPassesThrough(t *testing.T) {
	assert.Equal(t, "anything at all", Noop{}.Clean("anything at all"))
}
