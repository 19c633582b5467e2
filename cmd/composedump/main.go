/*
Composedump compiles Compose files and prints their sequences.

Usage

    composedump [-v] [-f file] [-locale name] [-feed "keysym ..."]

Without -f, the Compose file is searched the way input methods do, for the
given locale or, if none is given, the locale of the environment. Every
sequence of the compiled table is printed in Compose file syntax, in order
of keysym values.

With -feed, a space-separated list of keysym names is fed into a compose
state instead, and the status after each keysym is printed:

    composedump -feed "Multi_key a p"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/npillmayer/compose"
	"github.com/npillmayer/compose/keysym"
	"github.com/npillmayer/compose/parser"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var logger = log.New(os.Stderr, "composedump: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

func main() {
	flag.BoolVar(&verbose, "v", false, "verbose output")
	file := flag.String("f", "", "Compose file to compile")
	loc := flag.String("locale", "", "locale, default from environment")
	feed := flag.String("feed", "", "keysyms to feed into a compose state")
	flag.Parse()
	if verbose {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
		gtrace.SyntaxTracer = gologadapter.New()
		gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	}
	table, err := load(*file, *loc)
	if err != nil {
		logger.Fatal(err)
	}
	if *feed != "" {
		if err := feedKeysyms(table, strings.Fields(*feed)); err != nil {
			logger.Fatal(err)
		}
		return
	}
	dump(table)
}

func load(file, loc string) (*compose.Table, error) {
	defer timeTrack(time.Now(), "compiling Compose table")
	var warnings, errors int
	count := compose.WithDiagnostics(func(d parser.Diagnostic) {
		if d.Severity == parser.SeverityError {
			errors++
		} else {
			warnings++
		}
	})
	var table *compose.Table
	var err error
	if file != "" {
		table, err = compose.NewTableFromFile(file, loc, compose.FormatTextV1, compose.CompileNoFlags, count)
	} else {
		table, err = compose.NewTableFromLocale(loc, compose.CompileNoFlags, count)
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		logger.Printf("locale %s: %d sequences, %d warnings, %d errors",
			table.Locale(), table.Len(), warnings, errors)
	}
	return table, nil
}

// dump prints every sequence of a table as a Compose production.
func dump(table *compose.Table) {
	it := table.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		p := parser.Production{
			String:    e.UTF8(),
			HasString: e.UTF8() != "",
			Keysym:    e.Keysym(),
			HasKeysym: e.Keysym() != keysym.NoSymbol,
		}
		for _, ks := range e.Sequence() {
			p.LHS = append(p.LHS, parser.Event{Keysym: ks})
		}
		fmt.Println(p.Source())
	}
}

func feedKeysyms(table *compose.Table, names []string) error {
	state, err := compose.NewState(table, compose.StateNoFlags)
	if err != nil {
		return err
	}
	for _, name := range names {
		ks := keysym.FromName(name)
		if ks == keysym.NoSymbol {
			return fmt.Errorf("unknown keysym %q", name)
		}
		r := state.Feed(ks)
		fmt.Printf("%-16s %-8s %-9s %q\n", name, r, state.Status(), state.Text())
	}
	return nil
}

func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}
