package errors

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"
)

// ValidationError holds every problem found in a config struct, keyed by
// field name.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Error lists the problems in field name order so messages are stable.
func (v *ValidationError) Error() string {
	if !v.HasErrors() {
		return "validation failed"
	}

	var sb strings.Builder
	sb.WriteString("validation failed: ")
	for i, field := range slices.Sorted(maps.Keys(v.Fields)) {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return sb.String()
}

func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError wraps the problems in an InvalidArgument error with the field map
// under the "validation_errors" meta key. It returns nil when there are none.
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder collects field problems while a Validate method walks
// its struct.
type ValidationBuilder struct {
	err *ValidationError
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: NewValidationError()}
}

func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns nil when no field was flagged.
func (vb *ValidationBuilder) Build() error {
	if err := vb.err.ToError(); err != nil {
		return err
	}
	return nil
}

// ValidateRequired flags a blank value.
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange flags a value outside [minValue, maxValue].
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateAbsoluteURL flags a value that is not a URL with a scheme and host.
func ValidateAbsoluteURL(field, value string, vb *ValidationBuilder) {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		vb.Field(field, "must be an absolute URL")
	}
}

// ValidatePositiveDuration flags a zero or negative duration.
func ValidatePositiveDuration(field string, value time.Duration, vb *ValidationBuilder) {
	if value <= 0 {
		vb.Field(field, "must be positive")
	}
}
