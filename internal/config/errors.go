package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownProperty indicates the name matches no descriptor after
	// normalization.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrInvalidBooleanValue indicates a token that is not "true"/"false".
	ErrInvalidBooleanValue = errors.New("invalid boolean value")

	// ErrInvalidEnumValue indicates a token that matches no enum member.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrUnknownEncoding indicates a console encoding name with no entry
	// in the IANA character set registry.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrNoConfigPath indicates the default config file location could
	// not be resolved. Callers must fall back to defaults and skip
	// persistence.
	ErrNoConfigPath = errors.New("config path unavailable")
)

// PropertyError reports a failed dynamic Get or Set.
type PropertyError struct {
	// Name is the property name as given by the caller.
	Name string
	// Value is the offending raw value (empty for lookup failures).
	Value string
	// Err categorizes the failure.
	Err error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("property %q: %v (value: %q)", e.Name, e.Err, e.Value)
	}
	return fmt.Sprintf("property %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// PersistError reports an I/O or parse failure during Save or Load.
type PersistError struct {
	// Path is the config file path.
	Path string
	// Op is the failed operation ("save", "load", "parse").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *PersistError) Error() string {
	return fmt.Sprintf("config %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistError) Unwrap() error {
	return e.Err
}
