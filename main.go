package main

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func run(cCtx *cli.Context) error {
	if cCtx.Bool("no-color") {
		color.NoColor = true
	}

	logger := log.New(io.Discard, "", 0)
	if cCtx.Bool("verbose") {
		logger = log.New(os.Stderr, "gocalc: ", log.Ltime|log.Lmsgprefix)
	}

	s := &session{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		showTokens: cCtx.Bool("tokens"),
		showTree:   cCtx.Bool("tree"),
		errColor:   color.New(color.FgRed),
		logger:     logger,
	}

	if cCtx.NArg() > 0 {
		return s.runBatch(cCtx.Args().Slice())
	}
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		return s.runTerminal(fd, struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout})
	}
	return s.runLines(os.Stdin)
}

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:      "gocalc",
		Usage:     "evaluate arithmetic expressions",
		ArgsUsage: "[expression ...]",
		Description: "With expressions as arguments, evaluates each of them and exits.\n" +
			"Otherwise reads one expression per line from stdin.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "tokens", Usage: "print the token sequence of each expression"},
			&cli.BoolFlag{Name: "tree", Usage: "print the parse tree of each expression"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored error messages"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log each evaluation stage to stderr"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("gocalc: %s.", err)
	}
}
