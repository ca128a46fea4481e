package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/kr/pretty"
	"golang.org/x/term"

	"go.creack.net/gocalc/executor"
	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
)

const prompt = "> "

// session holds the front end settings shared by every mode.
type session struct {
	stdout io.Writer
	stderr io.Writer

	showTokens bool
	showTree   bool

	errColor *color.Color
	logger   *log.Logger
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// eval runs a single expression through every stage and writes the result
// to w.
func (s *session) eval(w io.Writer, input string) error {
	tokens, err := lexer.Scan(input)
	if err != nil {
		return err
	}
	s.logger.Printf("tokens: %v", tokens)
	if s.showTokens {
		fmt.Fprintf(w, "tokens: %v\n", tokens)
	}

	expr, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	s.logger.Printf("tree: %# v", pretty.Formatter(expr))
	if s.showTree {
		fmt.Fprintf(w, "tree: %s\n", expr.Dump())
	}

	result := executor.Evaluate(expr)
	s.logger.Printf("result: %v", result)
	fmt.Fprintln(w, formatResult(result))
	return nil
}

func (s *session) reportError(w io.Writer, err error) {
	_, _ = s.errColor.Fprintf(w, "error: %s\n", err) // Best effort.
}

// handleLine evaluates one line of input. Blank lines are skipped and bad
// expressions are reported without ending the session. done is true when the
// line asks to leave.
func (s *session) handleLine(stdout, stderr io.Writer, line string) (done bool) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "exit", "quit":
		return true
	}
	if err := s.eval(stdout, line); err != nil {
		s.logger.Printf("evaluate %q: %s", line, err)
		s.reportError(stderr, err)
	}
	return false
}

// runLines reads expressions from r until EOF.
func (s *session) runLines(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s.handleLine(s.stdout, s.stderr, scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// runTerminal is the interactive loop. The terminal is put in raw mode so
// x/term can provide line editing and history.
func (s *session) runTerminal(fd int, rw io.ReadWriter) error {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("make raw terminal: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }() // Best effort.

	t := term.NewTerminal(rw, prompt)
	return s.runTerminalLoop(t)
}

type lineReader interface {
	io.Writer
	ReadLine() (string, error)
}

func (s *session) runTerminalLoop(t lineReader) error {
	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		if s.handleLine(t, t, line) {
			return nil
		}
	}
}

// runBatch evaluates every expression, in order. All failures are reported
// and the returned error summarizes them.
func (s *session) runBatch(exprs []string) error {
	var result *multierror.Error
	for _, input := range exprs {
		if err := s.eval(s.stdout, input); err != nil {
			s.reportError(s.stderr, err)
			result = multierror.Append(result, fmt.Errorf("evaluate %q: %w", input, err))
		}
	}
	if result != nil {
		result.ErrorFormat = func(es []error) string {
			return fmt.Sprintf("%d of %d expressions failed", len(es), len(exprs))
		}
	}
	return result.ErrorOrNil()
}
