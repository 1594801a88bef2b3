// File: lixenwraith/flags/flagset.go
package flags

import (
	"strconv"
	"strings"
	"time"
)

// Flag holds the registration of a single parameter. Immutable after
// registration.
type Flag struct {
	Kind        Kind
	Name        string
	Short       byte // 0 means no short name
	Description string

	dest value
	// defText is the rendered default for usage output; empty means the
	// default is not shown.
	defText string
}

// FlagSet is an ordered collection of registered flags plus the state of
// one parse. Register every flag, then call Parse exactly once; a
// FlagSet is not safe for concurrent use and re-parsing is unsupported.
type FlagSet struct {
	flags []*Flag

	// ignoreUnknown suppresses errors for unmatched tokens and keys.
	ignoreUnknown bool

	// Config flag descriptor; empty configName disables config support.
	configName  string
	configShort byte
	configDesc  string

	// First failure of the parse.
	errCode ErrorCode
	errName string
}

// New returns an empty FlagSet.
func New() *FlagSet {
	return &FlagSet{}
}

// IgnoreUnknown changes the parser's behavior when an unknown flag or
// config key is encountered: true skips it silently instead of failing.
func (fs *FlagSet) IgnoreUnknown(ignore bool) {
	fs.ignoreUnknown = ignore
}

// SetConfig registers the config flag. Once set, the flag's value on the
// command line names an INI file to merge, and a key of the same name
// inside a config file chains into another file.
func (fs *FlagSet) SetConfig(name string, short byte, description string) {
	fs.configName = name
	fs.configShort = short
	fs.configDesc = description
}

// Err returns the retained error record, or nil if the last parse
// succeeded.
func (fs *FlagSet) Err() error {
	if fs.errCode == ErrCodeNone {
		return nil
	}
	return &Error{Code: fs.errCode, Name: fs.errName}
}

// fail records the first failure and returns it. The offending name is
// truncated to maxNameLen.
func (fs *FlagSet) fail(code ErrorCode, name string) error {
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	fs.errCode = code
	fs.errName = name
	return &Error{Code: code, Name: name}
}

// add appends a flag. Name and short-name uniqueness is the caller's
// invariant; duplicates resolve to the first registration.
func (fs *FlagSet) add(kind Kind, name string, short byte, description string) *Flag {
	f := &Flag{
		Kind:        kind,
		Name:        name,
		Short:       short,
		Description: description,
		dest:        value{kind: kind},
	}
	fs.flags = append(fs.flags, f)
	return f
}

// BoolVar registers a bool flag. Presence on the command line sets it
// true; the destination is reset to false at registration.
func (fs *FlagSet) BoolVar(dst *bool, name string, short byte, description string) {
	f := fs.add(KindBool, name, short, description)
	f.dest.b = dst
	*dst = false
}

// StringVar registers a string flag with a default value.
func (fs *FlagSet) StringVar(dst *string, name string, short byte, def string, description string) {
	f := fs.add(KindString, name, short, description)
	f.dest.s = dst
	f.defText = def
	*dst = def
}

// IntVar registers an int flag with a default value. Parsed values must
// fit a signed 32-bit range.
func (fs *FlagSet) IntVar(dst *int, name string, short byte, def int, description string) {
	f := fs.add(KindInt, name, short, description)
	f.dest.i = dst
	f.defText = strconv.Itoa(def)
	*dst = def
}

// Float32Var registers a float32 flag with a default value.
func (fs *FlagSet) Float32Var(dst *float32, name string, short byte, def float32, description string) {
	f := fs.add(KindFloat32, name, short, description)
	f.dest.f32 = dst
	f.defText = strconv.FormatFloat(float64(def), 'f', 6, 32)
	*dst = def
}

// Float64Var registers a float64 flag with a default value.
func (fs *FlagSet) Float64Var(dst *float64, name string, short byte, def float64, description string) {
	f := fs.add(KindFloat64, name, short, description)
	f.dest.f64 = dst
	f.defText = strconv.FormatFloat(def, 'f', 6, 64)
	*dst = def
}

// TimeVar registers a time flag with a default value. Values use the
// TimeLayout format and are parsed in UTC.
func (fs *FlagSet) TimeVar(dst *time.Time, name string, short byte, def time.Time, description string) {
	f := fs.add(KindTime, name, short, description)
	f.dest.t = dst
	if !def.IsZero() {
		f.defText = def.Format(TimeLayout)
	}
	*dst = def
}

// lookupArg resolves a command-line token. A "--text" token matches the
// first flag (in declaration order) whose name begins with text; an
// ambiguous prefix resolves to the first registration, not an error. A
// two-character "-x" token matches a short name exactly.
func (fs *FlagSet) lookupArg(token string) *Flag {
	if len(token) < 2 || token[0] != '-' {
		return nil
	}
	if token[1] == '-' {
		text := token[2:]
		for _, f := range fs.flags {
			if strings.HasPrefix(f.Name, text) {
				return f
			}
		}
	} else if len(token) == 2 {
		for _, f := range fs.flags {
			if f.Short != 0 && f.Short == token[1] {
				return f
			}
		}
	}
	return nil
}

// lookupKey resolves a config-file key by exact name match.
func (fs *FlagSet) lookupKey(key string) *Flag {
	for _, f := range fs.flags {
		if f.Name == key {
			return f
		}
	}
	return nil
}

// isConfigArg reports whether a command-line token selects the config
// flag, using the same long-prefix and exact-short rules as lookupArg.
func (fs *FlagSet) isConfigArg(token string) bool {
	if fs.configName == "" || len(token) < 2 || token[0] != '-' {
		return false
	}
	if token[1] == '-' {
		return strings.HasPrefix(fs.configName, token[2:])
	}
	return len(token) == 2 && fs.configShort != 0 && token[1] == fs.configShort
}

// isHelpArg reports whether a token is the help spelling: "--help" exact
// or "-h".
func isHelpArg(token string) bool {
	if len(token) < 2 || token[0] != '-' {
		return false
	}
	if token[1] == '-' {
		return token[2:] == "help"
	}
	return len(token) == 2 && token[1] == 'h'
}
