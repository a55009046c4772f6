// almanac resolves the lowest location reachable from a seed almanac.
//
// Usage:
//
//	almanac [-format auto|text|yaml] [-workers N] [-dump] [-v] [file]
//
// part1 reads the seed line as individual seeds, part2 as (start, length)
// pairs. The default input is inputs/test1.txt.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/rangeflow/almanac"
	"github.com/katalvlaran/rangeflow/interval"
	"github.com/katalvlaran/rangeflow/pipeline"
	"github.com/katalvlaran/rangeflow/stage"
)

const defaultInput = "inputs/test1.txt"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "almanac: ", 0)

	fs := flag.NewFlagSet("almanac", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagFormat  string
		flagWorkers int
		flagDump    bool
		flagVerbose bool
	)
	fs.StringVar(&flagFormat, "format", "auto", "input format: auto, text or yaml")
	fs.IntVar(&flagWorkers, "workers", 1, "goroutines resolving seeds/ranges; 0 = one per CPU")
	fs.BoolVar(&flagDump, "dump", false, "print the parsed almanac before resolving")
	fs.BoolVar(&flagVerbose, "v", false, "log interval counts after every stage in part2")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := defaultInput
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	format, err := almanac.ParseFormat(flagFormat)
	if err != nil {
		logger.Print(err)

		return 2
	}

	a, err := almanac.LoadFile(path, format)
	if err != nil {
		logger.Print(err)

		return 1
	}
	if flagDump {
		spew.Fdump(stdout, a)
	}
	p, err := a.Pipeline()
	if err != nil {
		logger.Printf("%s: %v", path, err)

		return 1
	}

	opts := []pipeline.Option{pipeline.WithWorkers(flagWorkers)}
	if flagVerbose {
		opts = append(opts, pipeline.WithOnStage(func(i int, st *stage.Stage, out interval.Set) {
			logger.Printf("stage %d %s: %d interval(s), %d value(s)", i, st, out.Len(), out.Size())
		}))
	}

	start1 := time.Now()
	part1, err1 := pipeline.ResolveScalar(a.Seeds, p, opts...)
	if code := report(stdout, logger, "part1", part1, err1, time.Since(start1)); code != 0 {
		return code
	}

	start2 := time.Now()
	part2, err2 := pipeline.ResolveSeedPairs(a.Seeds, p, opts...)

	return report(stdout, logger, "part2", part2, err2, time.Since(start2))
}

// report prints one answer line. ErrEmptySeedInput is reported as
// "no result" and is not fatal; any other error is.
func report(w io.Writer, logger *log.Logger, name string, v uint64, err error, d time.Duration) int {
	switch {
	case errors.Is(err, pipeline.ErrEmptySeedInput):
		fmt.Fprintf(w, "%s: no result, time: %v\n", name, d)
	case err != nil:
		logger.Printf("%s: %v", name, err)

		return 1
	default:
		fmt.Fprintf(w, "%s: %d, time: %v\n", name, v, d)
	}

	return 0
}
