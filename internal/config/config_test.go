package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Config
		expectErr bool
	}{
		{
			name:   "empty file gives defaults",
			input:  "",
			expect: Default(),
		},
		{
			name: "all settings",
			input: `
				delimiter = "\t"
				input = "grammar.txt"
				output = "table.csv"

				[minimizer]
				command = ["./minimize", "--mealy"]
				input_file = "mealy.csv"
				dir = "work"
			`,
			expect: Config{
				Delimiter: "\t",
				Input:     "grammar.txt",
				Output:    "table.csv",
				Minimizer: Minimizer{
					Command:   []string{"./minimize", "--mealy"},
					InputFile: "mealy.csv",
					Dir:       "work",
				},
			},
		},
		{
			name:  "partial settings keep other defaults",
			input: `output = "x.csv"`,
			expect: func() Config {
				c := Default()
				c.Output = "x.csv"
				return c
			}(),
		},
		{
			name:      "bad toml",
			input:     `delimiter = `,
			expectErr: true,
		},
		{
			name:      "empty delimiter",
			input:     `delimiter = ""`,
			expectErr: true,
		},
		{
			name:      "comma delimiter clashes with target separator",
			input:     `delimiter = ","`,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := Parse([]byte(tc.input))

			if tc.expectErr {
				assert.Error(err)
				return
			}

			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Load(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.toml")

	cfg, err := Load(missing, false)
	assert.NoError(err)
	assert.Equal(Default(), cfg)

	_, err = Load(missing, true)
	assert.Error(err)

	present := filepath.Join(dir, "regnfa.toml")
	if !assert.NoError(os.WriteFile(present, []byte(`delimiter = "|"`), 0644)) {
		return
	}
	cfg, err = Load(present, true)
	assert.NoError(err)
	assert.Equal("|", cfg.Delimiter)
}

func Test_Minimizer_Runner(t *testing.T) {
	assert := assert.New(t)

	m := Minimizer{Command: []string{"a", "b"}, InputFile: "f.csv", Dir: "d"}
	r := m.Runner()

	assert.Equal([]string{"a", "b"}, r.Command)
	assert.Equal("f.csv", r.InputFile)
	assert.Equal("d", r.Dir)
}
