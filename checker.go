package regnfa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/dekarrin/regnfa/internal/automaton"
	"github.com/dekarrin/regnfa/internal/input"
	"github.com/dekarrin/rosed"
)

const consoleOutputWidth = 80

// QuitCommand ends a Checker session when entered on its own line.
const QuitCommand = "QUIT"

// Checker reads words from an input stream and reports whether the language
// of a converted grammar contains each one.
type Checker struct {
	res         automaton.Result
	in          input.Reader
	out         *bufio.Writer
	forceDirect bool
	running     bool
}

// NewChecker creates a Checker for res that reads from inputStream and writes
// to outputStream.
//
// If nil is given for the input stream, stdin is used. If nil is given for the
// output stream, stdout is used. Readline is used for input when the streams
// are stdin and stdout unless forceDirectInput is set.
func NewChecker(res automaton.Result, inputStream io.Reader, outputStream io.Writer, forceDirectInput bool) (*Checker, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	chk := &Checker{
		res:         res,
		out:         bufio.NewWriter(outputStream),
		forceDirect: forceDirectInput,
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		var err error
		chk.in, err = input.NewInteractiveReader("word> ")
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		chk.in = input.NewDirectReader(inputStream)
	}

	// an empty line checks the empty word
	chk.in.AllowBlank(true)

	return chk, nil
}

// Close closes all resources associated with the Checker, including any
// readline-related resources created for interactive mode.
func (chk *Checker) Close() error {
	if chk.running {
		return fmt.Errorf("cannot close a running checker")
	}

	if err := chk.in.Close(); err != nil {
		return fmt.Errorf("close input reader: %w", err)
	}

	return nil
}

// RunUntilQuit reads words and reports ACCEPT or REJECT for each until end of
// input or until QuitCommand is read.
func (chk *Checker) RunUntilQuit() error {
	intro := fmt.Sprintf("Checking words against a %s-linear grammar with %d states. ", chk.res.Type, len(chk.res.StateMap))
	intro += "Enter one word per line; separate multi-character terminals with spaces. "
	intro += "Enter " + QuitCommand + " or end input to stop."
	if chk.forceDirect {
		intro += " (direct input mode)"
	}

	if err := chk.write(rosed.Edit(intro).Wrap(consoleOutputWidth).String() + "\n"); err != nil {
		return err
	}

	chk.running = true
	defer func() {
		chk.running = false
	}()

	for chk.running {
		line, err := chk.in.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read word: %w", err)
		}

		if line == QuitCommand {
			break
		}

		verdict := "REJECT"
		if chk.res.Accepts(SplitWord(line)) {
			verdict = "ACCEPT"
		}
		if err := chk.write(verdict + "\n"); err != nil {
			return err
		}
	}

	return nil
}

func (chk *Checker) write(s string) error {
	if _, err := chk.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := chk.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}

// SplitWord splits a line of input into terminals. If the line contains
// whitespace, the terminals are the whitespace-separated fields; otherwise
// every character is a terminal of its own.
func SplitWord(line string) []string {
	if strings.IndexFunc(line, unicode.IsSpace) >= 0 {
		return strings.Fields(line)
	}

	symbols := make([]string, 0, len(line))
	for _, ch := range line {
		symbols = append(symbols, string(ch))
	}
	return symbols
}
