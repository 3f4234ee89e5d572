// Command inspect renders a live view of a shared structured value.
//
// It prepares a demo telemetry object, optionally starts a writer goroutine
// that mutates the shared region, and opens a TUI that decodes the region's
// fields on every tick. Selected fields can be edited through the validated
// accessor surface.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/structmem/layout"
	"github.com/wippyai/structmem/schema"
)

func main() {
	var (
		list     = flag.Bool("list", false, "Print the compiled layout and exit")
		noWriter = flag.Bool("no-writer", false, "Do not start the background writer")
		interval = flag.Duration("interval", 250*time.Millisecond, "Writer mutation interval")
		debug    = flag.Bool("debug", false, "Verbose compile logging (with -list)")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		layout.SetLogger(logger)
	}

	if *list {
		if err := printLayout(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "inspect needs a terminal; use -list for plain output")
		os.Exit(1)
	}

	if err := runInteractive(!*noWriter, *interval); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printLayout() error {
	l := layout.New()
	if err := l.Extend(telemetrySchema()); err != nil {
		return err
	}

	fmt.Printf("Telemetry layout: %d bytes, %d fields\n\n", l.Size(), l.Len())
	fmt.Printf("%-12s %-6s %8s %6s  %s\n", "FIELD", "TYPE", "OFFSET", "SIZE", "FLAGS")
	for _, d := range l.Fields() {
		flags := ""
		if d.ReadOnly {
			flags += "read-only "
		}
		if d.Private {
			flags += "private"
		}
		fmt.Printf("%-12s %-6s %8d %6d  %s\n",
			d.Name, schema.TypeName(d.Type), d.Offset, d.Size, flags)
	}
	return nil
}
