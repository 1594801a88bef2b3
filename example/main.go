// File: lixenwraith/flags/example/main.go

// Command example demonstrates flag registration, config-file merging,
// and struct decoding.
//
// Try:
//
//	go run ./example --help
//	go run ./example -v --host example.com --port 9000
//	go run ./example --config example.conf
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/flags"
)

type options struct {
	Verbose bool      `flag:"verbose,v" desc:"Enable verbose output"`
	Host    string    `flag:"host,H" desc:"Host to connect to"`
	Port    int       `flag:"port,p" desc:"Port to connect to"`
	Ratio   float64   `flag:"ratio" desc:"Sampling ratio"`
	Since   time.Time `flag:"since" desc:"Start of the reporting window"`
}

func main() {
	opts := options{
		Host:  "localhost",
		Port:  8080,
		Ratio: 0.25,
	}

	fs := flags.New()
	if err := fs.FromStruct(&opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fs.SetConfig("config", 'c', "Path to configuration file")

	if err := fs.Parse(os.Args); err != nil {
		fs.PrintError(os.Stderr)
	}

	fmt.Printf("verbose: %v\n", opts.Verbose)
	fmt.Printf("host:    %s\n", opts.Host)
	fmt.Printf("port:    %d\n", opts.Port)
	fmt.Printf("ratio:   %g\n", opts.Ratio)
	if !opts.Since.IsZero() {
		fmt.Printf("since:   %s\n", opts.Since.Format(flags.TimeLayout))
	}
}
