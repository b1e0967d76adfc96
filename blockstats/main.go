// Command blockstats prints the entropy and Huffman block coding figures of text files.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	blockcoding "github.com/sinedfq/Block-CodingTI"
	"github.com/sinedfq/Block-CodingTI/report"
)

const defaultInput = "input_data.txt"

var (
	maxBlockSize = flag.Int("max", 4, "largest block size analysed")
	unitName     = flag.String("unit", "rune", "symbol unit, rune or byte")
	workers      = flag.Int("workers", 1, "number of block sizes analysed concurrently")
	cacheSize    = flag.Int("cache", 64, "number of analyses kept for identical inputs")
	verbose      = flag.Bool("verbose", false, "verbosity")
)

// Config holds the command line settings.
type Config struct {
	MaxBlockSize int
	Unit         blockcoding.Unit
	Workers      int
	CacheSize    int
	Verbose      bool
	Patterns     []string
}

func parseConfig() (Config, error) {
	unit, err := blockcoding.ParseUnit(*unitName)
	if err != nil {
		return Config{}, errors.Wrap(err, "")
	}
	config := Config{
		MaxBlockSize: *maxBlockSize,
		Unit:         unit,
		Workers:      *workers,
		CacheSize:    *cacheSize,
		Verbose:      *verbose,
		Patterns:     flag.Args(),
	}
	if config.MaxBlockSize <= 0 {
		return Config{}, errors.Errorf("-max must be positive, got %d", config.MaxBlockSize)
	}
	if len(config.Patterns) == 0 {
		config.Patterns = []string{defaultInput}
	}
	return config, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file or glob...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	config, err := parseConfig()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	ok, err := run(os.Stdout, config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if !ok {
		os.Exit(1)
	}
}

// run analyses every input matched by config.Patterns.
// It returns false if some input was missing or could not be analysed.
func run(w io.Writer, config Config) (bool, error) {
	cache, err := blockcoding.NewCache(config.CacheSize)
	if err != nil {
		return false, errors.Wrap(err, "")
	}
	names, err := expand(config.Patterns)
	if err != nil {
		return false, errors.Wrap(err, "")
	}

	ok := true
	for i, name := range names {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return false, errors.Wrap(err, "")
			}
		}

		seq, err := blockcoding.ReadFile(name, config.Unit)
		if os.IsNotExist(errors.Cause(err)) {
			fmt.Fprintf(w, "error: file %s not found.\n", name)
			fmt.Fprintf(w, "Generate a file with a non-uniform symbol distribution.\n")
			ok = false
			continue
		}
		if err != nil {
			return false, errors.Wrap(err, "")
		}
		if config.Verbose {
			log.Printf("%s: %d symbols, fingerprint %016x", name, len(seq), blockcoding.Fingerprint(seq))
		}

		a, err := cache.Analyze(seq, config.MaxBlockSize, blockcoding.WithWorkers(config.Workers))
		if err != nil {
			fmt.Fprintf(w, "error: %s: %v\n", name, err)
			ok = false
			continue
		}
		if err := report.Write(w, name, a); err != nil {
			return false, errors.Wrap(err, "")
		}
	}
	if config.Verbose {
		log.Printf("%d inputs, %d distinct analyses", len(names), cache.Len())
	}
	return ok, nil
}

// expand replaces glob patterns by the files they match.
// Patterns without glob metacharacters, or matching nothing, are kept as is so that a missing file is reported.
func expand(patterns []string) ([]string, error) {
	var names []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", p)
		}
		if len(matches) == 0 {
			names = append(names, p)
			continue
		}
		names = append(names, matches...)
	}
	return names, nil
}
