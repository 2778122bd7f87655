/*
Regnfa converts a right-linear or left-linear regular grammar into a
nondeterministic finite automaton and writes it out as a transition table.

It reads the grammar from IN_PATH, detects whether it is right- or left-linear,
builds the NFA, prints the transition table to stdout and writes it to
OUT_PATH. Optionally, the NFA is then handed to an external minimizer as a
Mealy-style table, or words can be checked against it interactively.

Usage:

	regnfa [flags] [IN_PATH [OUT_PATH]]

IN_PATH defaults to "in.csv" and OUT_PATH defaults to "out.csv", unless the
config file says otherwise.

The flags are:

	-v, --version
		Give the current version of regnfa and then exit.

	-c, --config FILE
		Read settings from the given TOML file. If not given, will default to
		the value of environment variable REGNFA_CONFIG, and if that is not
		given, to "regnfa.toml" in the current working directory if it exists.

	-d, --delimiter DELIM
		Separate table fields with DELIM instead of ";".

	-p, --pretty
		Print the table to stdout as a boxed console table. The file written
		to OUT_PATH is unaffected.

	-m, --minimize
		Write the Mealy-style table to the minimizer input file and run the
		external minimizer on it. The minimizer runs before the table is
		printed or written to OUT_PATH, so a failed minimizer run leaves no
		table behind; its own output is printed after the table.

	--minimizer CMD
		Run CMD as the minimizer instead of the configured command. CMD is
		split on spaces.

	--check
		After conversion, read words from stdin and print ACCEPT or REJECT for
		each one until end of input or QUIT.

	--direct
		Force reading words directly from stdin as opposed to using GNU
		readline based routines even if launched in a tty.

	--trace LEVEL
		Set the trace level of the conversion. Must be one of Debug, Info, or
		Error. Defaults to Error.
*/
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/dekarrin/regnfa"
	"github.com/dekarrin/regnfa/internal/config"
	"github.com/dekarrin/regnfa/internal/minimizer"
	"github.com/dekarrin/regnfa/internal/table"
	"github.com/dekarrin/regnfa/internal/version"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates that the program was called incorrectly.
	ExitUsageError

	// ExitConversionError indicates that the grammar could not be read or
	// converted, or the table could not be written.
	ExitConversionError

	// ExitMinimizerError indicates that the external minimizer failed.
	ExitMinimizerError
)

const (
	EnvConfig     = "REGNFA_CONFIG"
	defaultConfig = "regnfa.toml"
	prettyWidth   = 120
)

// traceKeys are the tracing keys of every package that traces.
var traceKeys = []string{"regnfa", "regnfa.grammar", "regnfa.automaton"}

var (
	returnCode = ExitSuccess

	flagVersion   = pflag.BoolP("version", "v", false, "Give the current version of regnfa and then exit.")
	flagConfig    = pflag.StringP("config", "c", "", "Read settings from the given TOML file.")
	flagDelimiter = pflag.StringP("delimiter", "d", "", "Separate table fields with the given string.")
	flagPretty    = pflag.BoolP("pretty", "p", false, "Print the table as a boxed console table.")
	flagMinimize  = pflag.BoolP("minimize", "m", false, "Run the external minimizer on the result.")
	flagMinimizer = pflag.String("minimizer", "", "Use the given command as the minimizer.")
	flagCheck     = pflag.Bool("check", false, "Check words from stdin against the grammar.")
	flagDirect    = pflag.Bool("direct", false, "Force reading words directly from stdin instead of through readline.")
	flagTrace     = pflag.String("trace", "Error", "Set the trace level to Debug, Info, or Error.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(panicErr)
		}
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	level, err := traceLevel(*flagTrace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err.Error())
		returnCode = ExitUsageError
		return
	}
	initTracing(os.Stderr, level)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}

	args := pflag.Args()
	if len(args) > 2 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitUsageError
		return
	}
	inPath, outPath := cfg.Input, cfg.Output
	if len(args) > 0 {
		inPath = args[0]
	}
	if len(args) > 1 {
		outPath = args[1]
	}

	conv, err := regnfa.ConvertFile(inPath, regnfa.Options{Delimiter: cfg.Delimiter})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitConversionError
		return
	}
	tracer().Debugf("converted %s-linear grammar with %d rules from %s", conv.NFA.Type, conv.Rules.Len(), inPath)

	var runner *minimizer.Runner
	if *flagMinimize {
		r := cfg.Minimizer.Runner()
		runner = &r
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	returnCode, err = emit(ctx, os.Stdout, conv, outPath, *flagPretty, runner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return
	}

	if *flagCheck {
		chk, err := regnfa.NewChecker(conv.NFA, os.Stdin, os.Stdout, *flagDirect)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitConversionError
			return
		}
		defer chk.Close()

		if err := chk.RunUntilQuit(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitConversionError
			return
		}
	}
}

// loadConfig reads the config file named by flags or environment, then
// applies flag overrides on top of it.
func loadConfig() (config.Config, error) {
	path := os.Getenv(EnvConfig)
	if pflag.Lookup("config").Changed {
		path = *flagConfig
	}
	mustExist := path != ""
	if path == "" {
		path = defaultConfig
	}

	cfg, err := config.Load(path, mustExist)
	if err != nil {
		return cfg, err
	}

	if pflag.Lookup("delimiter").Changed {
		cfg.Delimiter = *flagDelimiter
	}
	if pflag.Lookup("minimizer").Changed {
		cfg.Minimizer.Command = strings.Fields(*flagMinimizer)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if cfg.Delimiter != table.DefaultDelimiter {
		tracer().Infof("using non-default delimiter %q; the minimizer may not accept it", cfg.Delimiter)
	}

	return cfg, nil
}

// emit runs the minimizer on conv if runner is not nil, then prints the table
// to w and writes it to outPath. Nothing is printed or written when the
// minimizer fails. Output of the minimizer goes to w after the table. The
// returned code is the exit code the program should give.
func emit(ctx context.Context, w io.Writer, conv regnfa.Output, outPath string, pretty bool, runner *minimizer.Runner) (int, error) {
	var minimizerOut bytes.Buffer
	if runner != nil {
		runner.Stdout = &minimizerOut

		tracer().Debugf("running minimizer %q on %s", strings.Join(runner.Command, " "), runner.InputPath())
		if err := runner.Run(ctx, conv.Mealy); err != nil {
			return ExitMinimizerError, err
		}
	}

	if pretty {
		fmt.Fprintln(w, table.Pretty(conv.NFA, prettyWidth))
	} else {
		fmt.Fprintln(w, conv.Table)
	}

	if err := os.WriteFile(outPath, []byte(conv.Table+"\n"), 0644); err != nil {
		return ExitConversionError, fmt.Errorf("write table: %w", err)
	}

	if _, err := w.Write(minimizerOut.Bytes()); err != nil {
		return ExitConversionError, fmt.Errorf("write minimizer output: %w", err)
	}

	return ExitSuccess, nil
}

func tracer() tracing.Trace {
	return tracing.Select("regnfa")
}

// initTracing sends the traces of every package through a Go logger writing
// to w, at the given level.
func initTracing(w io.Writer, level tracing.TraceLevel) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	for _, key := range traceKeys {
		t := tracing.Select(key)
		t.SetOutput(w)
		t.SetTraceLevel(level)
	}
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error":
		return tracing.LevelError, nil
	default:
		return tracing.LevelError, errors.New("trace level must be one of Debug, Info, or Error")
	}
}
