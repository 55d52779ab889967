package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrValidation covers caller-supplied inputs the engine cannot analyze:
	// unknown variables, all-missing columns, wrong group counts, bad shapes.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration covers requests the engine does not support at all,
	// such as an unknown statistical test kind.
	ErrConfiguration = errors.New("configuration error")

	ErrVariableNotFound = fmt.Errorf("%w: variable not found", ErrValidation)
	ErrAllMissing       = fmt.Errorf("%w: variable contains only missing values", ErrValidation)
	ErrGroupCount       = fmt.Errorf("%w: wrong number of groups", ErrValidation)
	ErrTableShape       = fmt.Errorf("%w: unsupported table shape", ErrValidation)
	ErrEmptyFrame       = fmt.Errorf("%w: dataset is empty", ErrValidation)

	ErrUnsupportedTest = fmt.Errorf("%w: unsupported statistical test", ErrConfiguration)
)

// Error constructors with context

func NewVariableNotFoundError(name string) error {
	return fmt.Errorf("%w: %q", ErrVariableNotFound, name)
}

func NewAllMissingError(name string) error {
	return fmt.Errorf("%w: %q", ErrAllMissing, name)
}

func NewGroupCountError(name string, want string, got int) error {
	return fmt.Errorf("%w: variable %q yields %d groups, need %s", ErrGroupCount, name, got, want)
}

func NewTableShapeError(want string, rows, cols int) error {
	return fmt.Errorf("%w: need %s, got %dx%d", ErrTableShape, want, rows, cols)
}

func NewUnsupportedTestError(kind string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedTest, kind)
}

// Error checking helpers

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
