// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jfind parses JSON documents and prints the value found at a path.
//
// Usage:
//
//	jfind -path items.#.id [flags] file.json ...
//
// If no files are named, jfind reads a single document from stdin. Each
// document is parsed into an arena of -tokens tokens; the value found at
// -path is printed to stdout, one line per document.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Search options
	path := flag.String("path", "", "Dot-separated path to search for (required)")
	tokens := flag.Int("tokens", 1024, "Token arena capacity per document")
	jwcc := flag.Bool("jwcc", false, "Accept comments and trailing commas in input")

	// Performance options
	workers := flag.Int("workers", 4, "Number of documents to parse concurrently")

	// Logging options
	logLevel := flag.String("log-level", "warn", "Log level (trace, debug, info, warn, error, fatal)")
	prettyLogs := flag.Bool("pretty", false, "Enable pretty logging output")

	flag.Parse()
	setupLogging(*logLevel, *prettyLogs)

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Error: --path flag is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config{
		Path:    *path,
		Tokens:  *tokens,
		JWCC:    *jwcc,
		Workers: *workers,
		Files:   flag.Args(),
	}
	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Search failed")
		os.Exit(1)
	}
}

func setupLogging(level string, pretty bool) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Output is reserved for results, so logs go to stderr.
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
