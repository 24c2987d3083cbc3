package faff

import (
	"errors"
	"fmt"

	"github.com/npillmayer/faff/mphf"
)

var (
	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("faff: invalid font file")
	// ErrRange is matched by every *RangeError.
	ErrRange = errors.New("faff: value out of range")
	// ErrConstruction is matched by construction failures of Build.
	ErrConstruction = mphf.ErrConstruction
	// ErrNotFound signals that a font has no glyph for a code point.
	ErrNotFound = errors.New("faff: glyph not found")
	// ErrIncompleteFont is matched by every *IncompleteFontError.
	ErrIncompleteFont = errors.New("faff: incomplete font")
)

// ConstructionError is returned by Build if no minimal perfect hash
// function could be found.
type ConstructionError = mphf.ConstructionError

// FormatError describes a malformed font file.
type FormatError struct {
	Offset int // byte offset the problem was detected at
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("faff: invalid font file at offset %d: %s", e.Offset, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// RangeError describes a value outside its valid domain.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("faff: %s %d not in range %d..%d", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool { return target == ErrRange }

// IncompleteFontError is returned when a font lacks the replacement
// character U+FFFD.
type IncompleteFontError struct {
	Missing rune
}

func (e *IncompleteFontError) Error() string {
	return fmt.Sprintf("faff: font does not define U+%04X", e.Missing)
}

func (e *IncompleteFontError) Is(target error) bool { return target == ErrIncompleteFont }
