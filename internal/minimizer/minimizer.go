// Package minimizer runs the external table minimizer on a Mealy-style table.
package minimizer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultInputFile is the file the minimizer reads its table from when no
// other file is configured.
const DefaultInputFile = "input_mealy.csv"

var (
	// ErrNoCommand is returned by Run when the Runner has no command.
	ErrNoCommand = errors.New("no minimizer command configured")

	// ErrMinimizerFailed is returned by Run when the minimizer could not be
	// started or exits with a non-zero status.
	ErrMinimizerFailed = errors.New("minimizer failed")
)

// Runner runs an external minimizer process. The zero value has no command
// and cannot be run.
type Runner struct {
	// Command is the program to run followed by its arguments.
	Command []string

	// InputFile is where the table is written before Command is run. If
	// relative, it is relative to Dir. Defaults to DefaultInputFile.
	InputFile string

	// Dir is the working directory of the minimizer. If empty, the current
	// working directory is used.
	Dir string

	// Stdout receives the standard output of the minimizer. If nil, the
	// output is discarded.
	Stdout io.Writer
}

// InputPath returns the path the table is written to.
func (r Runner) InputPath() string {
	p := r.InputFile
	if p == "" {
		p = DefaultInputFile
	}
	if r.Dir != "" && !filepath.IsAbs(p) {
		p = filepath.Join(r.Dir, p)
	}
	return p
}

// Run writes table to the input file and then runs the minimizer, blocking
// until it exits. A non-zero exit status gives an error wrapping
// ErrMinimizerFailed that includes whatever the minimizer wrote to stderr. The
// run is never retried.
func (r Runner) Run(ctx context.Context, table string) error {
	if len(r.Command) < 1 || r.Command[0] == "" {
		return ErrNoCommand
	}

	inPath := r.InputPath()
	if err := os.WriteFile(inPath, []byte(table), 0644); err != nil {
		return fmt.Errorf("write minimizer input: %w", err)
	}

	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, r.Command[0], r.Command[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%w: %s: %s", ErrMinimizerFailed, err.Error(), msg)
		}
		return fmt.Errorf("%w: %s", ErrMinimizerFailed, err.Error())
	}

	return nil
}
