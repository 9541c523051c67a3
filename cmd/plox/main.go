package main

// This is the front end for the Lox programming language written in Go. It
// scans and parses Lox expressions and prints their syntax tree.

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/ltungv/lox/plox/internal/config"
	"github.com/ltungv/lox/plox/internal/grammar"
	"github.com/ltungv/lox/plox/internal/lox"
)

const (
	exitUsage = 64
	exitData  = 65
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input-str",
		Aliases: []string{"s"},
		Usage:   "Read the source from a string instead of a file",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "plox",
		Usage:                  "Scan and parse Lox expressions",
		ArgsUsage:              "[script]",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load settings from a TOML or YAML file",
				EnvVars: []string{config.EnvConfigPath},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Print diagnostics without colors",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log scanner and parser activity",
			},
		},
		Before: setup,
		Action: runDefault,
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "Print the tokens of a Lox source",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					inputFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print tokens as JSON",
					},
				},
				Action: tokens,
			},
			{
				Name:      "parse",
				Usage:     "Print the syntax tree of a Lox expression",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					inputFlag(),
					&cli.BoolFlag{
						Name:  "reference",
						Usage: "Parse with the declarative reference grammar",
					},
				},
				Action: parse,
			},
			{
				Name:   "grammar",
				Usage:  "Print the EBNF of the reference grammar",
				Action: printGrammar,
			},
		},
	}
}

// driver holds what every command needs once flags and config are resolved
type driver struct {
	cfg      *config.Config
	log      *slog.Logger
	reporter lox.Reporter
	out      io.Writer
}

func setup(c *cli.Context) error {
	var (
		cfg    *config.Config
		source string
		err    error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
		source = path
	} else {
		cfg, source, err = config.LoadFromEnv()
	}
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), exitUsage)
	}

	level := cfg.SlogLevel()
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
	logger.Debug("config loaded", "path", source, "defaults", source == "")

	var reporter lox.Reporter
	if cfg.Color && !c.Bool("no-color") {
		reporter = lox.NewColorReporter(c.App.ErrWriter)
	} else {
		reporter = lox.NewSimpleReporter(c.App.ErrWriter)
	}

	c.App.Metadata = map[string]interface{}{
		"driver": &driver{cfg: cfg, log: logger, reporter: reporter, out: c.App.Writer},
	}
	return nil
}

func getDriver(c *cli.Context) *driver {
	return c.App.Metadata["driver"].(*driver)
}

// readSource returns the --input-str value or the content of the file named by
// the first argument.
func readSource(c *cli.Context) (string, error) {
	if c.IsSet("input-str") {
		return c.String("input-str"), nil
	}
	filename := c.Args().First()
	if filename == "" {
		return "", cli.Exit(color.RedString("Error: No file specified"), exitUsage)
	}
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return "", cli.Exit(color.RedString("Error reading %s: %s", filename, err), exitUsage)
	}
	return string(bytes), nil
}

func runDefault(c *cli.Context) error {
	d := getDriver(c)
	switch c.NArg() {
	case 0:
		return d.runPrompt(c.App.Reader)
	case 1:
		src, err := readSource(c)
		if err != nil {
			return err
		}
		if !d.run(src) {
			return cli.Exit("", exitData)
		}
		return nil
	default:
		return cli.Exit("Usage: plox [script]", exitUsage)
	}
}

// run parses the source and prints its syntax tree. It returns false if any
// error was reported.
func (d *driver) run(src string) bool {
	start := time.Now()
	expr, toks := lox.Run(src, d.reporter)
	d.log.Debug("source processed",
		"tokens", len(toks),
		"ok", expr != nil,
		"elapsed", time.Since(start),
	)
	if expr == nil {
		return false
	}
	printer := &lox.AstPrinter{}
	fmt.Fprintln(d.out, printer.Print(expr))
	return true
}

// runPrompt runs the driver in REPL mode. Errors on one line do not end the
// session.
func (d *driver) runPrompt(in io.Reader) error {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(d.out, d.cfg.Prompt)
		if !s.Scan() {
			break
		}
		d.run(s.Text())
		d.reporter.Reset()
	}
	return s.Err()
}

func tokens(c *cli.Context) error {
	d := getDriver(c)
	src, err := readSource(c)
	if err != nil {
		return err
	}

	toks := lox.NewScanner(src).Scan()
	d.log.Debug("source scanned", "tokens", len(toks))

	if c.Bool("json") || d.cfg.TokenFormat == "json" {
		encoder := json.NewEncoder(d.out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(toks); err != nil {
			return cli.Exit(color.RedString("Error encoding tokens: %s", err), 1)
		}
	} else {
		for _, tok := range toks {
			if tok.OK() {
				fmt.Fprintf(d.out, "%d\t%s\n", tok.Line, tok)
			}
		}
	}

	if lox.ReportScanErrors(toks, d.reporter) > 0 {
		return cli.Exit("", exitData)
	}
	return nil
}

func parse(c *cli.Context) error {
	d := getDriver(c)
	src, err := readSource(c)
	if err != nil {
		return err
	}

	if c.Bool("reference") {
		ref, err := grammar.Parse(src)
		if err != nil {
			d.reporter.Report(err)
			return cli.Exit("", exitData)
		}
		fmt.Fprintln(d.out, grammar.Render(ref))
		return nil
	}

	if !d.run(src) {
		return cli.Exit("", exitData)
	}
	return nil
}

func printGrammar(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, grammar.EBNF())
	return nil
}
