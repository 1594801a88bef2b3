// FILE: lixenwraith/flags/merge_test.go
package flags

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeReader tests merging from a caller-supplied stream
func TestMergeReader(t *testing.T) {
	t.Run("AllKinds", func(t *testing.T) {
		var (
			verbose bool
			host    string
			port    int
			rate    float32
			ratio   float64
			since   time.Time
		)
		fs := New()
		fs.BoolVar(&verbose, "verbose", 0, "")
		fs.StringVar(&host, "host", 0, "localhost", "")
		fs.IntVar(&port, "port", 0, 8080, "")
		fs.Float32Var(&rate, "rate", 0, 0, "")
		fs.Float64Var(&ratio, "ratio", 0, 0, "")
		fs.TimeVar(&since, "since", 0, time.Time{}, "")

		content := strings.Join([]string{
			"; sample configuration",
			"verbose = true",
			"host = example.com",
			"port = 9000",
			"rate = 0.5",
			"ratio = 0.75",
			"since = 2024-06-15T08:00:00",
		}, "\n")

		require.NoError(t, fs.Merge(strings.NewReader(content)))
		assert.True(t, verbose)
		assert.Equal(t, "example.com", host)
		assert.Equal(t, 9000, port)
		assert.Equal(t, float32(0.5), rate)
		assert.Equal(t, 0.75, ratio)
		assert.Equal(t, time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC), since)
	})

	t.Run("BoolExactSpellings", func(t *testing.T) {
		var verbose bool
		fs := New()
		fs.BoolVar(&verbose, "verbose", 0, "")

		require.NoError(t, fs.Merge(strings.NewReader("verbose = true\n")))
		assert.True(t, verbose)

		require.NoError(t, fs.Merge(strings.NewReader("verbose = false\n")))
		assert.False(t, verbose)

		err := fs.Merge(strings.NewReader("verbose = maybe\n"))
		require.Error(t, err)
		e := err.(*Error)
		assert.Equal(t, ErrCodeInvalidValue, e.Code)
		assert.Equal(t, "verbose", e.Name)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		fs := New()
		err := fs.Merge(strings.NewReader("bogus = 1\n"))
		require.Error(t, err)
		e := err.(*Error)
		assert.Equal(t, ErrCodeUnknown, e.Code)
		assert.Equal(t, "bogus", e.Name)
	})

	t.Run("IgnoreUnknownSkips", func(t *testing.T) {
		var port int
		fs := New()
		fs.IgnoreUnknown(true)
		fs.IntVar(&port, "port", 0, 8080, "")

		require.NoError(t, fs.Merge(strings.NewReader("bogus = 1\nport = 9000\n")))
		assert.Equal(t, 9000, port)
	})

	t.Run("MissingValue", func(t *testing.T) {
		var host string
		fs := New()
		fs.StringVar(&host, "host", 0, "localhost", "")

		err := fs.Merge(strings.NewReader("host =\n"))
		require.Error(t, err)
		e := err.(*Error)
		assert.Equal(t, ErrCodeMissingValue, e.Code)
		assert.Equal(t, "host", e.Name)
		assert.Equal(t, "localhost", host)
	})

	t.Run("SyntaxError", func(t *testing.T) {
		fs := New()
		err := fs.Merge(strings.NewReader("=orphan\n"))
		require.Error(t, err)
		assert.Equal(t, ErrCodeInvalidValue, err.(*Error).Code)
	})

	t.Run("ContinuationValue", func(t *testing.T) {
		var host string
		fs := New()
		fs.StringVar(&host, "host", 0, "", "")

		require.NoError(t, fs.Merge(strings.NewReader("host = part1 \\\npart2\n")))
		assert.Equal(t, "part1 part2", host)
	})
}

// TestMergeChaining tests config-file chaining and its limits
func TestMergeChaining(t *testing.T) {
	writeConfig := func(t *testing.T, dir, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("InnerFileMergedBeforeRemainingLines", func(t *testing.T) {
		dir := t.TempDir()
		inner := writeConfig(t, dir, "inner.conf", "port = 9000\nhost = inner.example.com\n")
		outer := writeConfig(t, dir, "outer.conf",
			"host = outer.example.com\nconfig = "+inner+"\nport = 7\n")

		var host string
		var port int
		fs := New()
		fs.StringVar(&host, "host", 0, "", "")
		fs.IntVar(&port, "port", 0, 0, "")
		fs.SetConfig("config", 0, "")

		require.NoError(t, fs.Parse([]string{"prog", "--config", outer}))
		// inner.conf ran between the two outer assignments
		assert.Equal(t, "inner.example.com", host)
		assert.Equal(t, 7, port)
	})

	t.Run("InnerOpenFailure", func(t *testing.T) {
		dir := t.TempDir()
		outer := writeConfig(t, dir, "outer.conf", "config = /no/such/file.conf\n")

		fs := New()
		fs.SetConfig("config", 0, "")

		err := fs.Parse([]string{"prog", "--config", outer})
		require.Error(t, err)
		e := err.(*Error)
		assert.Equal(t, ErrCodeOpenConfig, e.Code)
		assert.Equal(t, "config", e.Name)
	})

	t.Run("ChainKeyWithoutValue", func(t *testing.T) {
		dir := t.TempDir()
		outer := writeConfig(t, dir, "outer.conf", "config =\n")

		fs := New()
		fs.SetConfig("config", 0, "")

		err := fs.Parse([]string{"prog", "--config", outer})
		require.Error(t, err)
		assert.Equal(t, ErrCodeMissingValue, err.(*Error).Code)
	})

	t.Run("SelfReferenceHitsDepthCap", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "loop.conf")
		require.NoError(t, os.WriteFile(path, []byte("config = "+path+"\n"), 0644))

		fs := New()
		fs.SetConfig("config", 0, "")

		err := fs.Parse([]string{"prog", "--config", path})
		require.Error(t, err)
		e := err.(*Error)
		assert.Equal(t, ErrCodeOpenConfig, e.Code)
		assert.Equal(t, "config", e.Name)
	})

	t.Run("ChainingDisabledWithoutConfigFlag", func(t *testing.T) {
		// With no config flag registered, "config" is a key like any other.
		var host string
		fs := New()
		fs.StringVar(&host, "host", 0, "", "")

		err := fs.Merge(strings.NewReader("config = other.conf\n"))
		require.Error(t, err)
		assert.Equal(t, ErrCodeUnknown, err.(*Error).Code)
	})

	t.Run("ChainKeyExactMatchOnly", func(t *testing.T) {
		// Keys do not prefix-match the config flag name.
		fs := New()
		fs.IgnoreUnknown(true)
		fs.SetConfig("config", 0, "")

		require.NoError(t, fs.Merge(strings.NewReader("conf = other.conf\n")))
	})
}
