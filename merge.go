// File: lixenwraith/flags/merge.go
package flags

import (
	"io"
	"os"
)

// maxConfigDepth caps config-file chaining. The format lets a file name
// another config file (including itself) with no cycle detection; the
// cap turns a runaway chain into ErrCodeOpenConfig instead of unbounded
// recursion.
const maxConfigDepth = 64

// Merge applies INI content from a caller-supplied stream to the
// registered flags. The stream is never closed; ownership stays with the
// caller.
func (fs *FlagSet) Merge(r io.Reader) error {
	return fs.merge(newScanner(r), 0)
}

// mergeFile opens the named config file and merges it. The file is
// closed exactly once on every exit path.
func (fs *FlagSet) mergeFile(path string, depth int) error {
	if depth >= maxConfigDepth {
		return fs.fail(ErrCodeOpenConfig, fs.configName)
	}

	f, err := os.Open(path)
	if err != nil {
		return fs.fail(ErrCodeOpenConfig, fs.configName)
	}
	s := newScanner(f)
	s.closer = f
	defer s.Close()

	return fs.merge(s, depth)
}

// merge is the key/value loop over one scanner. A key equal to the
// config flag's name chains into the file its value names before the
// current file continues; other keys resolve by exact name match and
// coerce with the config-text rules. The first failure aborts
// immediately.
func (fs *FlagSet) merge(s *iniScanner, depth int) error {
	for {
		key, ok, err := s.nextKey()
		if err != nil {
			// Syntax and overflow conditions surface as invalid values
			// naming the offending text.
			return fs.fail(ErrCodeInvalidValue, key)
		}
		if !ok {
			return nil
		}

		if fs.configName != "" && key == fs.configName {
			filename := s.nextValue()
			if filename == "" {
				return fs.fail(ErrCodeMissingValue, key)
			}
			if err := fs.mergeFile(filename, depth+1); err != nil {
				return err
			}
			continue
		}

		f := fs.lookupKey(key)
		if f == nil {
			if fs.ignoreUnknown {
				continue
			}
			return fs.fail(ErrCodeUnknown, key)
		}

		text := s.nextValue()
		if text == "" {
			return fs.fail(ErrCodeMissingValue, f.Name)
		}
		if !f.dest.set(text) {
			return fs.fail(ErrCodeInvalidValue, f.Name)
		}
	}
}
