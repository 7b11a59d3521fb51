package profanity

import (
	goaway "github.com/TwiN/go-away"
)

// Filter masks disallowed words in free text. Constructed once at startup and
// passed to every write path that persists user-supplied names.
type Filter interface {
	Clean(s string) string
}

type GoAwayFilter struct {
	detector *goaway.ProfanityDetector
}

func New() *GoAwayFilter {
	return &GoAwayFilter{detector: goaway.NewProfanityDetector()}
}

func (f *GoAwayFilter) Clean(s string) string {
	return f.detector.Censor(s)
}

// Noop passes text through unchanged. Used in tests.
type Noop struct{}

func (Noop) Clean(s string) string { return s }
