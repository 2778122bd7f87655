// Package config loads regnfa settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/regnfa/internal/minimizer"
	"github.com/dekarrin/regnfa/internal/table"
)

const (
	DefaultInput  = "in.csv"
	DefaultOutput = "out.csv"
)

// Config is the full set of regnfa settings.
type Config struct {
	// Delimiter separates the fields of the output table.
	Delimiter string `toml:"delimiter"`

	// Input is the grammar file read when none is given on the command line.
	Input string `toml:"input"`

	// Output is the table file written when none is given on the command
	// line.
	Output string `toml:"output"`

	Minimizer Minimizer `toml:"minimizer"`
}

// Minimizer holds the settings for running the external minimizer.
type Minimizer struct {
	Command   []string `toml:"command"`
	InputFile string   `toml:"input_file"`
	Dir       string   `toml:"dir"`
}

// Runner returns a minimizer.Runner for the settings.
func (m Minimizer) Runner() minimizer.Runner {
	return minimizer.Runner{
		Command:   m.Command,
		InputFile: m.InputFile,
		Dir:       m.Dir,
	}
}

// Default returns the Config used when no file is given.
func Default() Config {
	return Config{
		Delimiter: table.DefaultDelimiter,
		Input:     DefaultInput,
		Output:    DefaultOutput,
		Minimizer: Minimizer{
			Command:   []string{"python", "moore_minimizer.py"},
			InputFile: minimizer.DefaultInputFile,
		},
	}
}

// Validate returns an error if the Config cannot be used.
func (cfg Config) Validate() error {
	if cfg.Delimiter == "" {
		return fmt.Errorf("delimiter: must not be empty")
	}
	if strings.ContainsAny(cfg.Delimiter, ",\r\n") {
		return fmt.Errorf("delimiter: must not contain a comma or line break")
	}
	return nil
}

// Parse reads a Config from TOML data. Settings missing from data keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the Config in the TOML file at path. If the file does not exist
// and mustExist is false, the default Config is returned.
func Load(path string, mustExist bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}
