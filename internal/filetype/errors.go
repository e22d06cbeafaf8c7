package filetype

import (
	"fmt"
)

// AlreadyRegisteredError occurs when registering a duplicate filetype.
type AlreadyRegisteredError struct {
	Filetype string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("filetype '%s' is already registered", e.Filetype)
}

// OverridesNotFoundError occurs when the overrides file cannot be read.
type OverridesNotFoundError struct {
	Path string
	Err  error
}

func (e *OverridesNotFoundError) Error() string {
	return fmt.Sprintf("filetype overrides not found at '%s': %v", e.Path, e.Err)
}

func (e *OverridesNotFoundError) Unwrap() error {
	return e.Err
}

// OverridesParseError occurs when the overrides file is not valid YAML.
type OverridesParseError struct {
	Path string
	Err  error
}

func (e *OverridesParseError) Error() string {
	return fmt.Sprintf("failed to parse filetype overrides at '%s': %v", e.Path, e.Err)
}

func (e *OverridesParseError) Unwrap() error {
	return e.Err
}

// OverridesValidationError occurs when an override entry is incomplete.
type OverridesValidationError struct {
	Path    string
	Field   string
	Message string
}

func (e *OverridesValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("filetype overrides validation failed at '%s': %s (field: %s)",
			e.Path, e.Message, e.Field)
	}
	return fmt.Sprintf("filetype overrides validation failed at '%s': %s", e.Path, e.Message)
}
