package errors

import "fmt"

// WarnCode identifies a class of non-fatal degenerate-input condition.
type WarnCode string

const (
	// WarnDegenerateDomain marks a continuous column whose min equals its
	// max. The encoders map every row to the midpoint of the output range
	// instead of dividing by zero.
	WarnDegenerateDomain WarnCode = "DEGENERATE_DOMAIN"

	// WarnPaletteOverflow marks a categorical column with more distinct
	// values than the discrete palette can provide. Colors cycle
	// deterministically (index modulo palette size).
	WarnPaletteOverflow WarnCode = "PALETTE_OVERFLOW"
)

// Warning describes a degenerate-input condition that was resolved via a
// documented fallback rather than a failure. Warnings accompany valid
// results; they never replace them.
type Warning struct {
	Code    WarnCode
	Column  string // the attribute column that triggered the condition
	Message string
}

// String returns the formatted warning text.
func (w Warning) String() string {
	return fmt.Sprintf("%s: column %q: %s", w.Code, w.Column, w.Message)
}

// Warningf creates a Warning with a formatted message.
func Warningf(code WarnCode, column, format string, args ...any) Warning {
	return Warning{Code: code, Column: column, Message: fmt.Sprintf(format, args...)}
}
