package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Code identifies a calendar validation failure category.
type Code string

const (
	// ErrOutOfRange indicates a numeric field outside its valid interval.
	ErrOutOfRange Code = "datetime-out-of-range"
	// ErrInconsistentParts indicates redundant date/time parts that disagree.
	ErrInconsistentParts Code = "datetime-inconsistent-parts"
	// ErrMissingAnchor indicates that neither year nor isoYear was supplied.
	ErrMissingAnchor Code = "datetime-missing-anchor"
	// ErrParse indicates a string is not in the canonical ISO-8601 form.
	ErrParse Code = "datetime-parse-error"
)

// Validation describes a single calendar validation failure with the
// field it concerns and, where available, the expected and actual values.
//
//nolint:errname // public API name uses the validation domain term.
type Validation struct {
	Code     Code
	Field    string
	Message  string
	Expected string
	Actual   string
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Expected != "" {
		b.WriteString(fmt.Sprintf(" (expected: %s)", v.Expected))
	}
	if v.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", v.Actual))
	}
	return b.String()
}

// OutOfRange builds a Validation for a field value outside a closed interval.
func OutOfRange(field string, value, min, max float64) *Validation {
	return &Validation{
		Code:     ErrOutOfRange,
		Field:    field,
		Message:  fmt.Sprintf("%s out of range", field),
		Expected: formatNumber(min) + ".." + formatNumber(max),
		Actual:   formatNumber(value),
	}
}

// OutOfRangeOpen builds a Validation for a field value outside an open interval.
func OutOfRangeOpen(field string, value, min, max float64) *Validation {
	return &Validation{
		Code:     ErrOutOfRange,
		Field:    field,
		Message:  fmt.Sprintf("%s out of range", field),
		Expected: "(" + formatNumber(min) + ", " + formatNumber(max) + ")",
		Actual:   formatNumber(value),
	}
}

// OutOfRangeValues builds a Validation for a field restricted to an enumerated set.
func OutOfRangeValues(field string, value float64, expected string) *Validation {
	return &Validation{
		Code:     ErrOutOfRange,
		Field:    field,
		Message:  fmt.Sprintf("%s out of range", field),
		Expected: expected,
		Actual:   formatNumber(value),
	}
}

// Inconsistent builds a Validation for redundant parts that disagree, carrying
// the value derived from the anchoring parts and the value actually supplied.
func Inconsistent(field string, expected, actual float64) *Validation {
	return &Validation{
		Code:     ErrInconsistentParts,
		Field:    field,
		Message:  fmt.Sprintf("%s is inconsistent with the other parts", field),
		Expected: formatNumber(expected),
		Actual:   formatNumber(actual),
	}
}

// MissingAnchor builds a Validation for a parts record with no usable date anchor.
func MissingAnchor() *Validation {
	return &Validation{
		Code:    ErrMissingAnchor,
		Message: "one of year and isoYear must be set",
	}
}

// Parse builds a Validation for a string that is not canonical ISO-8601.
func Parse(input, reason string) *Validation {
	return &Validation{
		Code:    ErrParse,
		Message: fmt.Sprintf("invalid ISO-8601 value %q: %s", input, reason),
	}
}

// AsValidation extracts a Validation from an error chain.
func AsValidation(err error) (*Validation, bool) {
	if err == nil {
		return nil, false
	}
	var v *Validation
	if errors.As(err, &v) && v != nil {
		return v, true
	}
	return nil, false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
