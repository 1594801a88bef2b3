// File: lixenwraith/flags/errors.go
package flags

import "fmt"

// ErrorCode classifies a parse failure.
type ErrorCode int

const (
	// ErrCodeNone means no error has been recorded.
	ErrCodeNone ErrorCode = iota
	// ErrCodeHelp is recorded when the help flag is passed. It is not a
	// true failure; PrintError renders usage and exits 0.
	ErrCodeHelp
	// ErrCodeUnknown is recorded for an unrecognized flag token or
	// config-file key.
	ErrCodeUnknown
	// ErrCodeMissingValue is recorded when a value-taking flag has no
	// following token, or a config key has no value.
	ErrCodeMissingValue
	// ErrCodeInvalidValue is recorded when a value cannot be coerced to
	// the flag's kind, and for config-file syntax and key-overflow
	// conditions.
	ErrCodeInvalidValue
	// ErrCodeOpenConfig is recorded when a config file cannot be opened,
	// or the chaining depth limit is exceeded.
	ErrCodeOpenConfig
)

// maxNameLen bounds registered flag names and the offending-name text
// retained in an Error.
const maxNameLen = 64

// Error is the single error record a FlagSet retains: the first failure
// of a parse, with the flag name or literal token it occurred on.
type Error struct {
	Code ErrorCode
	Name string
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeHelp:
		return "help requested"
	case ErrCodeUnknown:
		return fmt.Sprintf("unknown flag %q", e.Name)
	case ErrCodeMissingValue:
		return fmt.Sprintf("missing value for flag %q", e.Name)
	case ErrCodeInvalidValue:
		return fmt.Sprintf("invalid value for flag %q", e.Name)
	case ErrCodeOpenConfig:
		return fmt.Sprintf("failed to open config file %q", e.Name)
	}
	return "no error"
}
