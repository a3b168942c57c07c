package domain

import "errors"

var (
	ErrNotNumeric       = errors.New("not_numeric")
	ErrUnknownFieldPath = errors.New("unknown_field_path")
	ErrReadOnlyField    = errors.New("read_only_field")
	ErrIndexOutOfRange  = errors.New("index_out_of_range")
)

// ValidationError describes a single field-level failure.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors aggregates field failures for one document.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v *ValidationErrors) Error() string {
	return "validation error"
}

func (v *ValidationErrors) Add(field, code, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Code: code, Message: message})
}

func (v *ValidationErrors) Empty() bool {
	return v == nil || len(v.Errors) == 0
}
