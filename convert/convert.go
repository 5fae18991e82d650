// Package convert is the script-conversion boundary applied to every source
// line before layout: Simplified Chinese in, Traditional Chinese out. The
// layout engine only ever sees converted text.
package convert

// Converter rewrites one line of text. Implementations must be total over
// well-formed input: every line yields a converted line or an error, never a
// partial result.
type Converter interface {
	Convert(s string) (string, error)
}

// Identity returns its input unchanged, for already-traditional sources and
// tests.
type Identity struct{}

func (Identity) Convert(s string) (string, error) { return s, nil }
