// File: lixenwraith/flags/scanner.go
package flags

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode"
)

// Capacity limits for config-file parsing. Overlong physical lines are
// truncated to maxLineLen and values are capped to maxValueLen; both are
// documented limits, not errors. A key longer than maxKeyLen is an
// error.
const (
	maxLineLen  = 512
	maxKeyLen   = 64
	maxValueLen = 512
)

var (
	errSyntax      = errors.New("invalid config syntax")
	errKeyOverflow = errors.New("config key too long")
)

// iniScanner reads a config stream one bounded, right-trimmed line at a
// time and extracts key/value pairs from it. The cursor and remaining
// length allow re-scanning the tail of the current line (the value part
// after a key has been cut off).
type iniScanner struct {
	r *bufio.Reader
	// closer is non-nil only for streams the scanner opened itself;
	// caller-supplied streams are never closed.
	closer io.Closer

	// Current line, already right-trimmed, at most maxLineLen bytes.
	line      []byte
	lineno    int
	cursor    int
	remaining int
}

// newScanner wraps a caller-supplied stream. The caller keeps ownership.
func newScanner(r io.Reader) *iniScanner {
	return &iniScanner{r: bufio.NewReader(r)}
}

// Close releases an owned stream exactly once. It is a no-op for
// caller-supplied streams and repeated calls.
func (s *iniScanner) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

// consume reads the next physical line into the bounded buffer, dropping
// the portion beyond maxLineLen and trailing whitespace. It reports
// false at end of input.
func (s *iniScanner) consume() bool {
	s.cursor = 0
	s.remaining = 0
	s.line = s.line[:0]

	n := 0
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if n == 0 {
				return false
			}
			break
		}
		if b == '\n' {
			break
		}
		n++
		if len(s.line) < maxLineLen {
			s.line = append(s.line, b)
		}
	}

	s.lineno++
	s.line = bytes.TrimRightFunc(s.line, unicode.IsSpace)
	s.remaining = len(s.line)
	return true
}

// text left-trims from the cursor and returns the unconsumed part of the
// current line, or nil when nothing is left.
func (s *iniScanner) text() []byte {
	if s.remaining == 0 {
		return nil
	}
	rest := s.line[s.cursor : s.cursor+s.remaining]
	trimmed := bytes.TrimLeftFunc(rest, unicode.IsSpace)
	s.cursor += len(rest) - len(trimmed)
	s.remaining = len(trimmed)
	if s.remaining == 0 {
		return nil
	}
	return trimmed
}

// nextKey advances to the next content line and returns its key, leaving
// the cursor on the value part. Blank lines and ';'/'#' comment lines
// are skipped. ok is false at end of input. On errSyntax or
// errKeyOverflow the returned key holds the offending text.
func (s *iniScanner) nextKey() (key string, ok bool, err error) {
	for s.consume() {
		line := s.text()
		if len(line) == 0 || line[0] == ';' || line[0] == '#' {
			continue
		}

		// The first '=' must leave at least two bytes of key.
		sep := bytes.IndexByte(line, '=')
		if sep < 2 {
			return string(line), false, errSyntax
		}
		s.cursor += sep + 1
		s.remaining -= sep + 1

		k := bytes.TrimRightFunc(line[:sep], unicode.IsSpace)
		if len(k) > maxKeyLen {
			return string(k), false, errKeyOverflow
		}
		return string(k), true, nil
	}
	return "", false, nil
}

// nextValue returns the value for the key just produced by nextKey. A
// trailing backslash continues the value on the next physical line;
// fragments are re-trimmed and joined with one space until a fragment
// lacks the marker or maxValueLen is reached. An empty result means the
// key had no value.
func (s *iniScanner) nextValue() string {
	line := s.text()
	if len(line) == 0 {
		return ""
	}

	if line[len(line)-1] != '\\' {
		if len(line) > maxValueLen {
			line = line[:maxValueLen]
		}
		return string(line)
	}

	var joined []byte
	more := true
	for more && len(line) > 0 && len(joined) < maxValueLen {
		more = line[len(line)-1] == '\\'
		if more {
			line = bytes.TrimRightFunc(line[:len(line)-1], unicode.IsSpace)
		}
		if room := maxValueLen - len(joined); len(line) > room {
			line = line[:room]
		}
		joined = append(joined, line...)

		if more && len(joined) < maxValueLen {
			joined = append(joined, ' ')
			if !s.consume() {
				break
			}
			line = s.text()
		}
	}
	return string(joined)
}
