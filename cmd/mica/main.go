package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"mica/interpreter-go/pkg/driver"
	"mica/interpreter-go/pkg/interpreter"
	"mica/interpreter-go/pkg/lexer"
	"mica/interpreter-go/pkg/parser"
	"mica/interpreter-go/pkg/runtime"
)

const cliToolVersion = "mica-cli 1.0.0"

const (
	exitOK      = 0
	exitFailure = 1
	exitLexical = 2
)

var errManifestNotFound = errors.New(driver.ManifestFileName + " not found")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runRepl(nil)
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return exitOK
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return exitOK
	case "repl":
		return runRepl(args[1:])
	case "run":
		return runEntry(args[1:])
	case "test":
		return runTests(args[1:])
	default:
		if strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(os.Stderr, "unknown option %s\n", args[0])
			printUsage()
			return exitFailure
		}
		return runEntry(args)
	}
}

type runOptions struct {
	dumpTokens bool
	dumpAST    bool
}

func runEntry(args []string) int {
	opts, optind, err := getopt.Getopts(append([]string{"mica run"}, args...), "ath")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitFailure
	}
	var ro runOptions
	for _, opt := range opts {
		switch opt.Option {
		case 't':
			ro.dumpTokens = true
		case 'a':
			ro.dumpAST = true
		default: // case 'h':
			printUsage()
			return exitFailure
		}
	}
	args = append([]string{"mica run"}, args...)[optind:]

	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return exitFailure
	}

	var manifest *driver.Manifest
	if len(args) == 0 || !looksLikePathCandidate(args[0]) {
		manifest, err = loadManifestFrom(".")
		if err != nil && !errors.Is(err, errManifestNotFound) {
			fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
			return exitFailure
		}
	}

	if len(args) == 0 {
		if manifest == nil {
			fmt.Fprintf(os.Stderr, "mica run requires a manifest target or source file (%s not found)\n", driver.ManifestFileName)
			return exitFailure
		}
		target, err := manifest.DefaultExecutableTarget()
		if err != nil {
			fmt.Fprintf(os.Stderr, "manifest error: %v\n", err)
			return exitFailure
		}
		entryPath, err := resolveTargetMain(manifest, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve target entrypoint: %v\n", err)
			return exitFailure
		}
		return executeEntry(entryPath, ro)
	}

	candidate := args[0]
	if manifest != nil {
		if target, ok := manifest.FindTarget(candidate); ok {
			if target.Type != driver.TargetTypeExecutable {
				fmt.Fprintf(os.Stderr, "target %q is not executable\n", target.OriginalName)
				return exitFailure
			}
			entryPath, err := resolveTargetMain(manifest, target)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to resolve target %q: %v\n", target.OriginalName, err)
				return exitFailure
			}
			return executeEntry(entryPath, ro)
		}
	}
	return executeEntry(candidate, ro)
}

func executeEntry(entry string, opts runOptions) int {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		fmt.Fprintln(os.Stderr, "mica run requires a source file")
		return exitFailure
	}
	src, err := driver.LoadSource(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load program: %v\n", err)
		return exitFailure
	}

	tokens, err := lexer.Tokenize(src.Text)
	if err != nil {
		return reportError(err)
	}
	if opts.dumpTokens {
		dumpTokens(os.Stdout, tokens)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return reportError(err)
	}
	if opts.dumpAST {
		if err := dumpAST(os.Stdout, program); err != nil {
			fmt.Fprintf(os.Stderr, "failed to dump AST: %v\n", err)
			return exitFailure
		}
	}

	value, err := interpreter.New().EvaluateProgram(program)
	if err != nil {
		return reportError(err)
	}
	fmt.Fprintln(os.Stdout, runtime.Render(value))
	return exitOK
}

// reportError prints err and maps it to the process exit status.
func reportError(err error) int {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}

func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, lexer.ErrInvalidCharacter),
		errors.Is(err, lexer.ErrNonASCII),
		errors.Is(err, lexer.ErrNumberRange):
		return exitLexical
	default:
		return exitFailure
	}
}

func loadManifestFrom(start string) (*driver.Manifest, error) {
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		start = cwd
	}
	absStart, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest search path %q: %w", start, err)
	}
	manifestPath, err := findManifest(absStart)
	if err != nil {
		return nil, err
	}
	return driver.LoadManifest(manifestPath)
}

func resolveTargetMain(manifest *driver.Manifest, target *driver.TargetSpec) (string, error) {
	if manifest == nil || target == nil {
		return "", fmt.Errorf("missing manifest or target")
	}
	mainPath := strings.TrimSpace(target.Main)
	if mainPath == "" {
		return "", fmt.Errorf("target %q has no main entrypoint", target.OriginalName)
	}
	return manifest.ResolvePath(mainPath), nil
}

func looksLikePathCandidate(arg string) bool {
	if arg == "" {
		return false
	}
	if strings.Contains(arg, "/") || strings.Contains(arg, "\\") {
		return true
	}
	if filepath.Ext(arg) == driver.SourceExtension {
		return true
	}
	return strings.HasPrefix(arg, ".")
}

func findManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, driver.ManifestFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", driver.ManifestFileName, origin, errManifestNotFound)
		}
		dir = parent
	}
}

func resolveMicaHome() (string, error) {
	if home := strings.TrimSpace(os.Getenv("MICA_HOME")); home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return "", fmt.Errorf("resolve MICA_HOME %q: %w", home, err)
		}
		return abs, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(userHome, ".mica"), nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  mica [repl]")
	fmt.Fprintln(os.Stderr, "  mica run [-t] [-a] [target]")
	fmt.Fprintln(os.Stderr, "  mica run [-t] [-a] <file.mica>")
	fmt.Fprintln(os.Stderr, "  mica <file.mica>")
	fmt.Fprintln(os.Stderr, "  mica test [-v] [dir ...]")
	fmt.Fprintln(os.Stderr, "  mica version")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -t     print the token stream before evaluating")
	fmt.Fprintln(os.Stderr, "  -a     print the syntax tree as JSON before evaluating")
	fmt.Fprintln(os.Stderr, "  -v     list passing fixture cases too")
}
