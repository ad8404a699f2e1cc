package ask

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return &Terminal{
		Reader: bufio.NewReader(strings.NewReader(input)),
		Writer: &out,
	}, &out
}

func TestTerminalInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{name: "empty selects default", input: "\n", def: "/dare", want: "/dare"},
		{name: "reply wins", input: "/custom\n", def: "/dare", want: "/custom"},
		{name: "whitespace trimmed", input: "  /custom  \n", def: "/dare", want: "/custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, out := scripted(tt.input)

			got, err := term.Input("Enter a path", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Enter a path")
		})
	}
}

func TestTerminalSelect(t *testing.T) {
	options := []string{"overwrite", "abort"}

	t.Run("by number", func(t *testing.T) {
		term, _ := scripted("2\n")

		got, err := term.Select("Pick one", options)
		require.NoError(t, err)
		assert.Equal(t, "abort", got)
	})

	t.Run("invalid reply reprompts", func(t *testing.T) {
		term, out := scripted("nope\n7\n1\n")

		got, err := term.Select("Pick one", options)
		require.NoError(t, err)
		assert.Equal(t, "overwrite", got)
		assert.Contains(t, out.String(), "Unrecognized choice")
	})

	t.Run("eof is an error", func(t *testing.T) {
		term, _ := scripted("")

		_, err := term.Select("Pick one", options)
		assert.Error(t, err)
	})
}

func TestTerminalMultiSelect(t *testing.T) {
	options := []string{"storage", "compute", "fetch", "other"}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "none", input: "\n", want: nil},
		{name: "one", input: "1\n", want: []string{"storage"}},
		{name: "several", input: "1,3\n", want: []string{"storage", "fetch"}},
		{name: "input order does not matter", input: "3, 1\n", want: []string{"storage", "fetch"}},
		{name: "duplicates collapse", input: "2,2,2\n", want: []string{"compute"}},
		{name: "out of range ignored", input: "1,9\n", want: []string{"storage"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, _ := scripted(tt.input)

			got, err := term.MultiSelect("Which operations?", options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "yes", input: "y\n", defaultYes: false, want: true},
		{name: "spelled out", input: "yes\n", defaultYes: false, want: true},
		{name: "no", input: "n\n", defaultYes: true, want: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty takes default no", input: "\n", defaultYes: false, want: false},
		{name: "garbage takes default", input: "maybe\n", defaultYes: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, _ := scripted(tt.input)

			got, err := term.Confirm("Proceed?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStaticDefaults(t *testing.T) {
	s := &Static{}

	input, err := s.Input("q", "/default")
	require.NoError(t, err)
	assert.Equal(t, "/default", input)

	choice, err := s.Select("q", []string{"first", "second"})
	require.NoError(t, err)
	assert.Equal(t, "first", choice)

	multi, err := s.MultiSelect("q", []string{"a", "b"})
	require.NoError(t, err)
	assert.Nil(t, multi)

	ok, err := s.Confirm("q", true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStaticOverrides(t *testing.T) {
	s := &Static{
		InputAnswers:   map[string]string{"path?": "/custom"},
		SelectAnswers:  map[string]string{"pick?": "second"},
		MultiAnswers:   map[string][]string{"ops?": {"storage"}},
		ConfirmAnswers: map[string]bool{"sure?": false},
	}

	input, _ := s.Input("path?", "/default")
	assert.Equal(t, "/custom", input)

	choice, _ := s.Select("pick?", []string{"first", "second"})
	assert.Equal(t, "second", choice)

	multi, _ := s.MultiSelect("ops?", []string{"storage", "fetch"})
	assert.Equal(t, []string{"storage"}, multi)

	ok, _ := s.Confirm("sure?", true)
	assert.False(t, ok)
}
