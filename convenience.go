// File: lixenwraith/flags/convenience.go
package flags

import (
	"io"
	"sync"
	"time"
)

// The process-wide default FlagSet, for tools that do not need more than
// one. Every package-level function below forwards to it.
var (
	defaultSet  *FlagSet
	defaultOnce sync.Once
)

// Default returns the lazily-initialized process-wide FlagSet.
func Default() *FlagSet {
	defaultOnce.Do(func() {
		defaultSet = New()
	})
	return defaultSet
}

// IgnoreUnknown changes the default set's behavior for unknown flags.
func IgnoreUnknown(ignore bool) {
	Default().IgnoreUnknown(ignore)
}

// SetConfig registers the config flag on the default set.
func SetConfig(name string, short byte, description string) {
	Default().SetConfig(name, short, description)
}

// BoolVar registers a bool flag on the default set.
func BoolVar(dst *bool, name string, short byte, description string) {
	Default().BoolVar(dst, name, short, description)
}

// StringVar registers a string flag on the default set.
func StringVar(dst *string, name string, short byte, def string, description string) {
	Default().StringVar(dst, name, short, def, description)
}

// IntVar registers an int flag on the default set.
func IntVar(dst *int, name string, short byte, def int, description string) {
	Default().IntVar(dst, name, short, def, description)
}

// Float32Var registers a float32 flag on the default set.
func Float32Var(dst *float32, name string, short byte, def float32, description string) {
	Default().Float32Var(dst, name, short, def, description)
}

// Float64Var registers a float64 flag on the default set.
func Float64Var(dst *float64, name string, short byte, def float64, description string) {
	Default().Float64Var(dst, name, short, def, description)
}

// TimeVar registers a time flag on the default set.
func TimeVar(dst *time.Time, name string, short byte, def time.Time, description string) {
	Default().TimeVar(dst, name, short, def, description)
}

// FromStruct registers annotated struct fields on the default set.
func FromStruct(target any) error {
	return Default().FromStruct(target)
}

// Parse parses command-line arguments into the default set.
func Parse(args []string) error {
	return Default().Parse(args)
}

// ParseEnv applies environment variables to the default set.
func ParseEnv(prefix string) error {
	return Default().ParseEnv(prefix)
}

// PrintUsage prints the default set's usage.
func PrintUsage(w io.Writer) {
	Default().PrintUsage(w)
}

// PrintError reports the default set's error record and exits.
func PrintError(w io.Writer) {
	Default().PrintError(w)
}
