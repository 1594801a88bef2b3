// File: lixenwraith/flags/value.go
package flags

import (
	"errors"
	"strconv"
	"time"
)

// Kind identifies the scalar type a flag coerces its text into.
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindInt
	KindFloat32
	KindFloat64
	KindTime
)

// TimeLayout is the fixed format accepted for time-valued flags and
// used when rendering time defaults in usage output.
const TimeLayout = "2006-01-02T15:04:05"

// value binds a flag to its caller-owned destination. Exactly one
// pointer is set, matching kind. The registry never allocates or frees
// this storage.
type value struct {
	kind Kind
	b    *bool
	s    *string
	i    *int
	f32  *float32
	f64  *float64
	t    *time.Time
}

// setBool writes a bool destination directly. Command-line presence sets
// true without consuming a value token.
func (v *value) setBool(b bool) {
	*v.b = b
}

// set coerces text into the destination and reports whether it was
// valid. The destination is untouched on failure. Bool text is the
// config/env form: exactly "true" or "false".
func (v *value) set(text string) bool {
	switch v.kind {
	case KindBool:
		switch text {
		case "true":
			*v.b = true
		case "false":
			*v.b = false
		default:
			return false
		}
	case KindString:
		*v.s = text
	case KindInt:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return false
		}
		*v.i = int(n)
	case KindFloat32:
		f, ok := parseFloatPrefix(text, 32)
		if !ok {
			return false
		}
		*v.f32 = float32(f)
	case KindFloat64:
		f, ok := parseFloatPrefix(text, 64)
		if !ok {
			return false
		}
		*v.f64 = f
	case KindTime:
		t, err := time.Parse(TimeLayout, text)
		if err != nil {
			return false
		}
		*v.t = t
	}
	return true
}

// parseFloatPrefix parses the longest leading decimal syntax in text,
// strtod-style: trailing characters are ignored, at least one character
// must be consumed, and range overflow saturates instead of failing.
func parseFloatPrefix(text string, bitSize int) (float64, bool) {
	for i := len(text); i > 0; i-- {
		f, err := strconv.ParseFloat(text[:i], bitSize)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return f, true
		}
	}
	return 0, false
}

// get returns the destination's current value.
func (v *value) get() any {
	switch v.kind {
	case KindBool:
		return *v.b
	case KindString:
		return *v.s
	case KindInt:
		return *v.i
	case KindFloat32:
		return *v.f32
	case KindFloat64:
		return *v.f64
	case KindTime:
		return *v.t
	}
	return nil
}
