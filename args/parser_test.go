package args

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

func testParser(t *testing.T, opts ...Option) *Parser {
	t.Helper()
	printer := NewPrinter()
	printer.Redirect(io.Discard)
	p := New("tester", "1.0", append([]Option{WithPrinter(printer), Program("tester")}, opts...)...)
	require.NoError(t, p.Add(Spec{Name: "input", Description: "input file", Switches: []string{"-i", "--input-file"}, ValueLabel: "file"}))
	require.NoError(t, p.Add(Spec{Name: "output", Description: "output file", Switches: []string{"-o", "--output-file"}, ValueLabel: "file"}))
	require.NoError(t, p.Add(Spec{Name: "quiet", Description: "quiet mode", Switches: []string{"-q", "--quiet"}}))
	require.NoError(t, p.Add(Spec{Name: "verbose", Description: "verbose mode", Switches: []string{"-V", "--verbose"}}))
	require.NoError(t, p.Add(Spec{Name: "all", Description: "all the things", Switches: []string{"-a", "--all"}}))
	return p
}

func TestParser_Parse(t *testing.T) {
	tests := map[string]struct {
		tokens   []string
		expected map[string]any
	}{
		"No tokens": {
			expected: map[string]any{},
		},
		"Bundled short switches": {
			tokens:   []string{"-qVa"},
			expected: map[string]any{"quiet": true, "verbose": true, "all": true},
		},
		"Long inline value": {
			tokens:   []string{"--output-file=out.txt"},
			expected: map[string]any{"output": "out.txt"},
		},
		"Short inline value": {
			tokens:   []string{"-o=out.txt"},
			expected: map[string]any{"output": "out.txt"},
		},
		"Value spillover": {
			tokens:   []string{"-o", "out.txt"},
			expected: map[string]any{"output": "out.txt"},
		},
		"Long value spillover": {
			tokens:   []string{"--output-file", "out.txt"},
			expected: map[string]any{"output": "out.txt"},
		},
		"Inline value keeps later equals signs": {
			tokens:   []string{"--input-file=a=b"},
			expected: map[string]any{"input": "a=b"},
		},
		"Bundled with value": {
			tokens:   []string{"-qVo=out.txt"},
			expected: map[string]any{"quiet": true, "verbose": true, "output": "out.txt"},
		},
		"Bundled with spaced value": {
			tokens:   []string{"-qo out.txt"},
			expected: map[string]any{"quiet": true, "output": "out.txt"},
		},
		"Bundle ending in valued switch takes next token": {
			tokens:   []string{"-qo", "out.txt"},
			expected: map[string]any{"quiet": true, "output": "out.txt"},
		},
		"Bundle order is preserved before later tokens": {
			tokens:   []string{"-qi", "in.txt", "-o", "out.txt"},
			expected: map[string]any{"quiet": true, "input": "in.txt", "output": "out.txt"},
		},
		"Inline value for boolean switch is ignored": {
			tokens:   []string{"--quiet=yes"},
			expected: map[string]any{"quiet": true},
		},
		"Bundled boolean switches with value": {
			tokens:   []string{"-qV=1"},
			expected: map[string]any{"quiet": true, "verbose": true},
		},
		"Later value wins": {
			tokens:   []string{"-o", "a.txt", "--output-file=b.txt"},
			expected: map[string]any{"output": "b.txt"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := testParser(t)
			require.NoError(t, p.Parse(tc.tokens))
			assert.Equal(t, tc.expected, p.Result().Map())
		})
	}
}

func TestParser_Parse_Errors(t *testing.T) {
	tests := map[string]struct {
		tokens []string
		is     []error
		msg    string
	}{
		"Missing value at end": {
			tokens: []string{"-o"},
			is:     []error{ErrValueRequired},
			msg:    "value required but not supplied for switch '-o'",
		},
		"Missing value before switch": {
			tokens: []string{"-o", "-q"},
			is:     []error{ErrValueRequired},
			msg:    "value required but not supplied for switch '-o'",
		},
		"All missing values are reported": {
			tokens: []string{"-o", "-i"},
			is:     []error{ErrValueRequired},
			msg:    "value required but not supplied for switch '-o'\nvalue required but not supplied for switch '-i'",
		},
		"Unknown switch": {
			tokens: []string{"--nope"},
			is:     []error{ErrUnrecognized},
			msg:    "unrecognized argument: '--nope'",
		},
		"Unknown bundled switch": {
			tokens: []string{"-qx"},
			is:     []error{ErrUnrecognized},
			msg:    "unrecognized argument: '-x'",
		},
		"Empty inline value": {
			tokens: []string{"--output-file="},
			is:     []error{ErrUnrecognized},
			msg:    "unrecognized argument: '--output-file='",
		},
		"Positional without positional params": {
			tokens: []string{"stray"},
			is:     []error{ErrUnrecognized},
			msg:    "unrecognized argument: 'stray'",
		},
		"Mixed errors": {
			tokens: []string{"--nope", "-o"},
			is:     []error{ErrUnrecognized, ErrValueRequired},
			msg:    "unrecognized argument: '--nope'\nvalue required but not supplied for switch '-o'",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := testParser(t)
			err := p.Parse(tc.tokens)
			require.Error(t, err)
			for _, target := range tc.is {
				assert.ErrorIs(t, err, target)
			}
			assert.Equal(t, tc.msg, err.Error())
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
			assert.False(t, p.Proceed(tc.tokens))
		})
	}
}

func TestParser_Lenient(t *testing.T) {
	p := testParser(t, Lenient())
	assert.NoError(t, p.Parse([]string{"--nope", "-qx", "stray"}))
	assert.Equal(t, map[string]any{"quiet": true}, p.Result().Map())
}

func TestParser_Required(t *testing.T) {
	p := testParser(t)
	require.NoError(t, p.Add(Spec{Name: "config", Switches: []string{"-c", "--config"}, ValueLabel: "path", Required: true}))
	require.NoError(t, p.Add(Spec{Name: "text", Description: "text to store", Required: true}))

	err := p.Parse(nil)
	require.ErrorIs(t, err, ErrMissingRequired)
	var missing *MissingRequiredError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"path", "text"}, missing.Missing)
	assert.Equal(t, "required arguments missing: path, text", err.Error())
	assert.Equal(t, 2, p.Tracker().Demanded())
	assert.Equal(t, 0, p.Tracker().Given())

	err = p.Parse([]string{"something"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"path"}, missing.Missing)

	assert.NoError(t, p.Parse([]string{"-c", "cfg.yaml", "something"}))
	assert.Equal(t, 2, p.Tracker().Given())
	assert.True(t, p.Proceed([]string{"--config=cfg.yaml", "something"}))
}

func TestParser_Required_FailedValueDoesNotSatisfy(t *testing.T) {
	p := testParser(t)
	require.NoError(t, p.Add(Spec{Name: "config", Switches: []string{"-c"}, ValueLabel: "path", Required: true}))

	err := p.Parse([]string{"-c"})
	assert.ErrorIs(t, err, ErrValueRequired)
	assert.ErrorIs(t, err, ErrMissingRequired)
	assert.Equal(t, "value required but not supplied for switch '-c'\nrequired arguments missing: path", err.Error())
}

func TestParser_Defaults(t *testing.T) {
	p := testParser(t)
	require.NoError(t, p.Add(Spec{Name: "format", Switches: []string{"-f", "--format"}, ValueLabel: "fmt", Required: true, Default: Default("json")}))

	assert.Equal(t, "json", p.Result().String("format"), "Defaults should be bound at declaration")
	assert.Equal(t, 1, p.Tracker().Demanded())
	assert.Equal(t, 1, p.Tracker().Given(), "A default should satisfy a requirement")

	require.NoError(t, p.Parse(nil))
	assert.Equal(t, "json", p.Result().String("format"))

	require.NoError(t, p.Parse([]string{"-f"}), "The default should be used if no value follows")
	assert.Equal(t, "json", p.Result().String("format"))

	require.NoError(t, p.Parse([]string{"-f", "yaml"}))
	assert.Equal(t, "yaml", p.Result().String("format"))
}

func TestParser_Positional(t *testing.T) {
	printer := NewPrinter()
	printer.Redirect(io.Discard)
	p := New("tester", "1.0", WithPrinter(printer))
	p.MustAdd(Spec{Name: "src", Required: true}).
		MustAdd(Spec{Name: "dst", Default: Default("."), Required: true}).
		MustAdd(Spec{Name: "quiet", Switches: []string{"-q"}})

	tests := map[string]struct {
		tokens   []string
		expected map[string]any
	}{
		"Defaults only": {
			tokens:   []string{"a"},
			expected: map[string]any{"dst": ".", "src": "a"},
		},
		"Default overwritten": {
			tokens:   []string{"a", "b"},
			expected: map[string]any{"dst": "b", "src": "a"},
		},
		"Extra tokens accumulate on the last": {
			tokens:   []string{"a", "b", "c", "d"},
			expected: map[string]any{"dst": "b c d", "src": "a"},
		},
		"Switches interleaved": {
			tokens:   []string{"a", "-q", "b", "c"},
			expected: map[string]any{"dst": "b c", "src": "a", "quiet": true},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, p.Parse(tc.tokens))
			assert.Equal(t, tc.expected, p.Result().Map())
		})
	}
}

func TestParser_Positional_Accumulation(t *testing.T) {
	printer := NewPrinter()
	printer.Redirect(io.Discard)
	p := New("tester", "1.0", WithPrinter(printer))
	p.MustAdd(Spec{Name: "text", Required: true})

	require.NoError(t, p.Parse([]string{"hello", "world"}))
	assert.Equal(t, "hello world", p.Result().String("text"))
	assert.True(t, p.Tracker().Met())
}

func TestParser_Reparse(t *testing.T) {
	p := testParser(t)
	require.NoError(t, p.Parse([]string{"-q", "-o", "a.txt"}))
	assert.Equal(t, map[string]any{"quiet": true, "output": "a.txt"}, p.Result().Map())

	require.NoError(t, p.Parse([]string{"-V"}))
	assert.Equal(t, map[string]any{"verbose": true}, p.Result().Map(), "State should not carry over between calls")
}

func TestParser_HelpAndVersion(t *testing.T) {
	p := testParser(t)
	require.NoError(t, p.Add(Spec{Name: "text", Required: true}))

	assert.ErrorIs(t, p.Parse([]string{"--version"}), ErrVersion)
	assert.ErrorIs(t, p.Parse([]string{"-v", "--nope", "-o"}), ErrVersion, "Version should win over any other error")
	assert.ErrorIs(t, p.Parse([]string{"-h"}), ErrHelp)
	assert.ErrorIs(t, p.Parse([]string{"-hv"}), ErrVersion, "Version should win over help")
	assert.ErrorIs(t, p.Parse([]string{"-qh"}), ErrHelp)
	assert.False(t, p.Proceed([]string{"--version", "text"}))
	assert.False(t, p.Proceed([]string{"--help", "text"}))
}

func TestParser_Add(t *testing.T) {
	p := testParser(t)

	err := p.Add(Spec{Name: "other", Switches: []string{"-q"}})
	assert.ErrorIs(t, err, ErrDuplicateSwitch)
	spec, ok := p.Lookup("-q")
	require.True(t, ok)
	assert.Equal(t, "quiet", spec.Name, "The first registrant should keep the switch")
	_, ok = p.Lookup("--other")
	assert.False(t, ok)

	assert.ErrorIs(t, p.Add(Spec{Name: "quiet", Switches: []string{"--silent"}}), ErrDuplicateName)
	assert.ErrorIs(t, p.Add(Spec{Name: "help"}), ErrDuplicateName, "Built-in names are reserved")
	assert.ErrorIs(t, p.Add(Spec{Name: "dupe", Switches: []string{"-d", "-d"}}), ErrDuplicateSwitch)
	assert.ErrorIs(t, p.Add(Spec{Name: ""}), ErrInvalidSpec)
	assert.ErrorIs(t, p.Add(Spec{Name: "bad", Switches: []string{"b"}}), ErrInvalidSpec)
	assert.ErrorIs(t, p.Add(Spec{Name: "bad", Switches: []string{"-"}}), ErrInvalidSpec)
	assert.ErrorIs(t, p.Add(Spec{Name: "bad", Switches: []string{"--b=c"}}), ErrInvalidSpec)
	assert.Panics(t, func() {
		p.MustAdd(Spec{Name: "quiet"})
	})

	var firstTokens []string
	for _, s := range p.Switches() {
		firstTokens = append(firstTokens, s.Switches[0])
	}
	assert.Equal(t, []string{"-a", "-h", "-i", "-o", "-q", "-v", "-V"}, firstTokens, "Switches should be sorted alphabetically by first token")
	assert.Empty(t, p.Positionals())
}

func TestParser_Add_CopiesSpec(t *testing.T) {
	p := testParser(t)
	switches := []string{"-x", "--extra"}
	def := "value"
	require.NoError(t, p.Add(Spec{Name: "extra", Switches: switches, ValueLabel: "v", Default: &def, Description: "  padded \n"}))
	switches[0] = "-y"
	def = "changed"

	spec, ok := p.Lookup("-x")
	require.True(t, ok)
	assert.Equal(t, "padded", spec.Description)
	assert.Equal(t, "value", *spec.Default)
	assert.Equal(t, "value", p.Result().String("extra"))
}
