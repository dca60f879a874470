package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/tevino/abool/v2"

	"mica/interpreter-go/pkg/driver"
	"mica/interpreter-go/pkg/interpreter"
	"mica/interpreter-go/pkg/lexer"
	"mica/interpreter-go/pkg/parser"
	"mica/interpreter-go/pkg/runtime"
)

// lineReader is the part of the line editor the session loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type replSession struct {
	interp  *interpreter.Interpreter
	config  driver.ReplConfig
	out     io.Writer
	errOut  io.Writer
	closing *abool.AtomicBool

	valueColor *color.Color
	errorColor *color.Color
	infoColor  *color.Color
}

func newReplSession(config driver.ReplConfig, out, errOut io.Writer) *replSession {
	s := &replSession{
		interp:     interpreter.New(),
		config:     config,
		out:        out,
		errOut:     errOut,
		closing:    abool.New(),
		valueColor: color.New(color.FgCyan),
		errorColor: color.New(color.FgRed),
		infoColor:  color.New(color.Faint),
	}
	if !config.Color {
		s.valueColor.DisableColor()
		s.errorColor.DisableColor()
		s.infoColor.DisableColor()
	}
	return s
}

func runRepl(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args, " "))
		return exitFailure
	}

	config := driver.DefaultReplConfig()
	manifest, err := loadManifestFrom(".")
	switch {
	case err == nil:
		config = manifest.Repl
	case !errors.Is(err, errManifestNotFound):
		fmt.Fprintf(os.Stderr, "warning: ignoring manifest (%v)\n", err)
	}

	session := newReplSession(config, os.Stdout, os.Stderr)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(config)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if err := os.MkdirAll(filepath.Dir(histPath), 0o755); err != nil {
				return
			}
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		if _, ok := <-sigc; ok {
			session.closing.Set()
			ln.Close()
		}
	}()

	return session.loop(ln)
}

func historyPath(config driver.ReplConfig) string {
	if config.History == "" {
		return ""
	}
	if filepath.IsAbs(config.History) {
		return config.History
	}
	home, err := resolveMicaHome()
	if err != nil {
		return ""
	}
	return filepath.Join(home, config.History)
}

func (s *replSession) loop(reader lineReader) int {
	if s.config.Banner != "" {
		fmt.Fprintln(s.out, s.config.Banner)
	}
	for {
		line, err := reader.Prompt(s.config.Prompt)
		if s.closing.IsSet() {
			return 130
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.errorColor.Fprintln(s.errOut, err.Error())
			}
			fmt.Fprintln(s.out)
			return exitOK
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		reader.AppendHistory(line)
		if strings.HasPrefix(trimmed, ":") {
			if s.command(trimmed) {
				return exitOK
			}
			continue
		}
		s.evaluate(line)
	}
}

func (s *replSession) evaluate(source string) {
	value, err := s.interp.Execute(source)
	if err != nil {
		s.errorColor.Fprintln(s.errOut, err.Error())
		return
	}
	s.valueColor.Fprintln(s.out, runtime.Render(value))
}

// command runs a colon command and reports whether the session should end.
func (s *replSession) command(input string) bool {
	name, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(name) {
	case ":quit", ":exit", ":q":
		return true
	case ":help":
		s.infoColor.Fprintln(s.out, ":env           list global bindings")
		s.infoColor.Fprintln(s.out, ":tokens <src>  show the token stream for src")
		s.infoColor.Fprintln(s.out, ":ast <src>     show the syntax tree for src as JSON")
		s.infoColor.Fprintln(s.out, ":quit          leave the repl")
	case ":env":
		s.printEnvironment()
	case ":tokens":
		tokens, err := lexer.Tokenize(rest)
		if err != nil {
			s.errorColor.Fprintln(s.errOut, err.Error())
			return false
		}
		dumpTokens(s.out, tokens)
	case ":ast":
		program, err := parser.ParseSource(rest)
		if err != nil {
			s.errorColor.Fprintln(s.errOut, err.Error())
			return false
		}
		if err := dumpAST(s.out, program); err != nil {
			s.errorColor.Fprintln(s.errOut, err.Error())
		}
	default:
		s.errorColor.Fprintf(s.errOut, "unknown command %s. Type :help for a list of commands.\n", name)
	}
	return false
}

func (s *replSession) printEnvironment() {
	env := s.interp.GlobalEnvironment()
	for _, name := range env.Keys() {
		value, err := env.Lookup(name)
		if err != nil {
			continue
		}
		kind := "let"
		if env.IsConstant(name) {
			kind = "const"
		}
		fmt.Fprintf(s.out, "%s %s = %s\n", kind, name, s.valueColor.Sprint(runtime.Render(value)))
	}
}
