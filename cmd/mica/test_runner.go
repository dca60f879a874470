package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"mica/interpreter-go/pkg/driver"
	"mica/interpreter-go/pkg/interpreter"
)

const defaultFixtureDir = "tests"

func runTests(args []string) int {
	opts, optind, err := getopt.Getopts(append([]string{"mica test"}, args...), "vh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitFailure
	}
	verbose := false
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			verbose = true
		default: // case 'h':
			printUsage()
			return exitFailure
		}
	}
	dirs := append([]string{"mica test"}, args...)[optind:]

	if len(dirs) == 0 {
		dirs, err = manifestFixtureDirs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
			return exitFailure
		}
	}

	var suites []*driver.FixtureSuite
	for _, dir := range dirs {
		loaded, err := driver.LoadFixtureDir(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return exitFailure
		}
		suites = append(suites, loaded...)
	}
	if len(suites) == 0 {
		fmt.Fprintln(os.Stderr, "no fixture suites found")
		return exitFailure
	}

	if failed := reportFixtures(os.Stdout, suites, verbose); failed > 0 {
		return exitFailure
	}
	return exitOK
}

// manifestFixtureDirs returns the test targets of the nearest manifest, or
// the conventional tests directory when there is no manifest.
func manifestFixtureDirs() ([]string, error) {
	manifest, err := loadManifestFrom(".")
	if err != nil {
		if errors.Is(err, errManifestNotFound) {
			return []string{defaultFixtureDir}, nil
		}
		return nil, err
	}
	var dirs []string
	for _, target := range manifest.TestTargets() {
		dir, err := resolveTargetMain(manifest, target)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	if len(dirs) == 0 {
		dirs = append(dirs, manifest.ResolvePath(defaultFixtureDir))
	}
	return dirs, nil
}

func reportFixtures(w io.Writer, suites []*driver.FixtureSuite, verbose bool) int {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)

	passed, failed := 0, 0
	for _, suite := range suites {
		for _, outcome := range interpreter.RunFixtureSuite(suite) {
			if outcome.Passed {
				passed++
				if verbose {
					fmt.Fprintf(w, "%s %s / %s\n", pass.Sprint("PASS"), outcome.Suite, outcome.Case)
				}
				continue
			}
			failed++
			fmt.Fprintf(w, "%s %s / %s: %s\n", fail.Sprint("FAIL"), outcome.Suite, outcome.Case, outcome.Detail)
		}
	}
	summary := pass
	if failed > 0 {
		summary = fail
	}
	fmt.Fprintln(w, summary.Sprintf("%d passed, %d failed", passed, failed))
	return failed
}
