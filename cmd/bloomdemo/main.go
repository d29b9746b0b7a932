// Command bloomdemo builds a filter from a bit budget and an expected element
// count, adds a few sample values and prints the membership results.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	bloom "github.com/lmpn/bloom-filter"
)

func main() {
	os.Exit(exitCode(run(os.Args[1:], os.Stdout, os.Stderr)))
}

// exitCode maps the result of run to a process status. Asking for usage is
// not a failure.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bloomdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	m := fs.Uint64("m", 0, "number of bits")
	n := fs.Uint64("n", 0, "number of expected elements")
	seed := fs.Uint64("seed", 0, "fixed seed for the hash keys (0 draws random keys)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var opts []bloom.Option
	if *seed != 0 {
		opts = append(opts, bloom.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	}
	f, err := bloom.NewWithBits(*m, *n, opts...)
	if err != nil {
		logger.Error("invalid filter parameters", "m", *m, "n", *n, "error", err)
		return err
	}
	hashes, nbits := f.Stats()
	logger.Debug("filter created", "hashes", hashes, "bits", nbits)

	const (
		one    = bloom.Int(1)
		docURL = "https://go.dev/doc/effective_go"
		memURL = "https://go.dev/ref/mem"
	)
	f.SetString(docURL)
	f.Set(one)

	fmt.Fprintln(stdout, "Bloom filter example")
	fmt.Fprintf(stdout, "contains %d: %t\n", one, f.Test(one))
	fmt.Fprintf(stdout, "contains %s: %t\n", docURL, f.TestString(docURL))
	fmt.Fprintf(stdout, "contains %s: %t\n", memURL, f.TestString(memURL))
	logger.Debug("filter state", "set_bits", f.Count(), "false_positive_rate", f.FalsePositiveRate())
	return nil
}
