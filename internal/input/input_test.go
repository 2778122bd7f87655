package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DirectReader_ReadLine(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		allowBlank bool
		expect     []string
	}{
		{
			name:   "lines are trimmed",
			input:  "  ab \n c\n",
			expect: []string{"ab", "c"},
		},
		{
			name:   "blank lines skipped",
			input:  "a\n\n   \nb",
			expect: []string{"a", "b"},
		},
		{
			name:       "blank lines allowed",
			input:      "a\n\nb\n",
			allowBlank: true,
			expect:     []string{"a", "", "b"},
		},
		{
			name:   "last line without newline",
			input:  "a\nb c",
			expect: []string{"a", "b c"},
		},
		{
			name:   "empty input",
			input:  "",
			expect: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			r := NewDirectReader(strings.NewReader(tc.input))
			r.AllowBlank(tc.allowBlank)
			defer r.Close()

			var actual []string
			for {
				line, err := r.ReadLine()
				if err == io.EOF {
					break
				}
				if !assert.NoError(err) {
					return
				}
				actual = append(actual, line)
			}

			assert.Equal(tc.expect, actual)
		})
	}
}
