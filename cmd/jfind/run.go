// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/creachadair/jarena"
	"github.com/creachadair/jarena/jpath"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"github.com/tailscale/hujson"
)

var errNotFound = errors.New("path not found")

// config carries the settings of a single invocation.
type config struct {
	Path    string   // search path
	Tokens  int      // arena capacity per document
	JWCC    bool     // standardize JSON with comments and commas
	Workers int      // concurrent parses
	Files   []string // input files; stdin if empty
}

type result struct {
	name  string
	value string
	err   error
}

// run searches each input named by cfg and writes the results to stdout.
// Each document is parsed by its own parser, since parsers cannot be shared
// between goroutines.
func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	if _, err := jpath.Parse(cfg.Path); err != nil {
		return fmt.Errorf("invalid path %q: %w", cfg.Path, err)
	}
	if cfg.Tokens < 0 {
		return fmt.Errorf("invalid token count %d", cfg.Tokens)
	}

	if len(cfg.Files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		val, err := search(cfg, "<stdin>", data)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, val)
		return nil
	}

	pool, err := ants.NewPool(max(cfg.Workers, 1))
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]result, len(cfg.Files))
	var wg sync.WaitGroup
	for i, name := range cfg.Files {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i] = searchFile(cfg, name)
		})
		if err != nil {
			wg.Done()
			results[i] = result{name: name, err: err}
		}
	}
	wg.Wait()

	var nfail int
	for _, r := range results {
		if r.err != nil {
			log.Error().Err(r.err).Str("file", r.name).Msg("Search failed")
			nfail++
			continue
		}
		if len(results) == 1 {
			fmt.Fprintln(stdout, r.value)
		} else {
			fmt.Fprintf(stdout, "%s: %s\n", r.name, r.value)
		}
	}
	if nfail != 0 {
		return fmt.Errorf("%d of %d documents failed", nfail, len(results))
	}
	return nil
}

func searchFile(cfg config, name string) result {
	data, err := os.ReadFile(name)
	if err != nil {
		return result{name: name, err: err}
	}
	val, err := search(cfg, name, data)
	return result{name: name, value: val, err: err}
}

// search parses data and returns the formatted value at cfg.Path.
func search(cfg config, name string, data []byte) (string, error) {
	if cfg.JWCC {
		std, err := hujson.Standardize(data)
		if err != nil {
			return "", fmt.Errorf("standardize: %w", err)
		}
		data = std
	}

	p := jarena.New(cfg.Tokens)
	if err := p.Parse(data); err != nil {
		log.Debug().
			Str("file", name).
			Stringer("status", jarena.StatusOf(err)).
			Int("tokens_used", p.TokensUsed()).
			Msg("Parse failed")
		return "", err
	}
	log.Debug().
		Str("file", name).
		Int("tokens_used", p.TokensUsed()).
		Int("capacity", p.Arena().Cap()).
		Msg("Parsed document")

	t := p.Find(cfg.Path)
	if t == nil {
		return "", errNotFound
	}
	return format(t), nil
}

// format renders a single token for display. Containers are summarized
// rather than printed.
func format(t *jarena.Token) string {
	switch t.Kind() {
	case jarena.String:
		return `"` + string(t.Text()) + `"`
	case jarena.Integer:
		return strconv.FormatInt(t.Int(), 10)
	case jarena.Real:
		return strconv.FormatFloat(t.Real(), 'g', -1, 64)
	case jarena.Object:
		return fmt.Sprintf("object (%d members)", t.Len())
	case jarena.Array:
		return fmt.Sprintf("array (%d elements)", t.Len())
	default:
		return t.Kind().String()
	}
}
