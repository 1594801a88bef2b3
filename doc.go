// File: lixenwraith/flags/doc.go

// Package flags implements typed command-line flag and INI-style
// configuration-file parsing for small command-line tools. Programs bind
// flags to their own variables, then parse arguments, environment
// variables, and config files into them.
//
// Features:
//   - Six scalar kinds: bool, string, int, float32, float64, time.Time
//   - Caller-owned destinations; the library never allocates flag storage
//   - Long flags with prefix matching (--verb matches --verbose) and
//     single-character short flags (-v)
//   - INI-style config files with comments, backslash line continuation,
//     and config-file chaining via a dedicated config flag
//   - Environment variable overrides with a caller-supplied prefix
//   - Struct-tag registration and mapstructure-based decoding
//   - Structured errors: every failure carries a code and the offending
//     flag name or token
//
// Quick Start:
//
//	var (
//	    verbose bool
//	    host    string
//	    port    int
//	)
//
//	fs := flags.New()
//	fs.BoolVar(&verbose, "verbose", 'v', "Enable verbose output")
//	fs.StringVar(&host, "host", 'H', "localhost", "Host to connect to")
//	fs.IntVar(&port, "port", 'p', 8080, "Port to connect to")
//	fs.SetConfig("config", 'c', "Path to configuration file")
//
//	if err := fs.Parse(os.Args); err != nil {
//	    fs.PrintError(os.Stderr) // prints usage and exits
//	}
//
// Config File Format:
//
// Files are line oriented: "key = value" pairs, blank lines ignored,
// comments start with ';' or '#'. There are no sections and no quoting.
// A value ending in '\' continues on the next line; fragments are joined
// with a single space. A key equal to the config flag's name chains into
// the named file before the current file continues.
//
// Lifecycle:
//
// Register every flag first, then parse exactly once. Values parsed
// later overwrite values parsed earlier (last wins). A FlagSet is not
// safe for concurrent use.
package flags
