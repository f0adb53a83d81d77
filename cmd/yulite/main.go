package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	yuliteerrors "yulite/internal/errors"
	"yulite/internal/phaser"
)

func main() {
	steps := flag.String("steps", "", "optimizer step sequence to apply, e.g. \"[fs]3 u\"")
	asJSON := flag.Bool("json", false, "print the tree as JSON instead of source form")
	showSize := flag.Bool("code-size", false, "print the code size metric after processing")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: yulite [flags] <file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	startTime := time.Now()
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	program, err := phaser.Load(path, string(source))
	if err != nil {
		reportLoadError(path, string(source), err)
		color.Red("Processing failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	if *steps != "" {
		if err := program.OptimiseSequence(*steps); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("error"), err)
			os.Exit(1)
		}
	}

	if *asJSON {
		out, err := program.ToJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode tree: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		fmt.Println(program.Render())
	}

	if *showSize {
		fmt.Printf("code size: %d (with functions: %d)\n",
			program.CodeSize(false), program.CodeSize(true))
	}

	color.Green("Successfully processed %s in %s", path, formatDuration(time.Since(startTime)))
}

func reportLoadError(path, source string, err error) {
	var invalid *yuliteerrors.InvalidProgram
	if errors.As(err, &invalid) {
		reporter := yuliteerrors.NewReporter(path, source)
		fmt.Fprint(os.Stderr, reporter.FormatInvalidProgram(invalid))
		return
	}
	fmt.Fprintf(os.Stderr, "%v\n", err)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
