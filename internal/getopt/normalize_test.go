package getopt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSpec declares the flags used across the normalizer tests: a handful of
// boolean shorts plus one argument-requiring short.
func testSpec() *Spec {
	return NewSpec(
		Option{Name: "a", Short: "a"},
		Option{Name: "b", Short: "b"},
		Option{Name: "x", Short: "x"},
		Option{Name: "y", Short: "y"},
		Option{Name: "z", Short: "z"},
		Option{Name: "o", Short: "o", TakesValue: true},
		Option{Name: "name", Long: "name", TakesValue: true},
	)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "cluster of boolean flags expands in order",
			args:     []string{"-xyz"},
			expected: []string{"-x", "-y", "-z"},
		},
		{
			name:     "argument-requiring short consumes cluster remainder",
			args:     []string{"-oVALUE"},
			expected: []string{"-o", "VALUE"},
		},
		{
			name:     "flags before argument-requiring short survive",
			args:     []string{"-xoVALUE"},
			expected: []string{"-x", "-o", "VALUE"},
		},
		{
			name:     "remainder is consumed even when it looks like flags",
			args:     []string{"-oxyz"},
			expected: []string{"-o", "xyz"},
		},
		{
			name:     "argument-requiring short last in cluster emits no value",
			args:     []string{"-abo", "next"},
			expected: []string{"-a", "-b", "-o", "next"},
		},
		{
			name:     "long option with inline value splits at first equals",
			args:     []string{"--name=value"},
			expected: []string{"--name", "value"},
		},
		{
			name:     "value containing equals is preserved intact",
			args:     []string{"--name=a=b"},
			expected: []string{"--name", "a=b"},
		},
		{
			name:     "empty inline value yields an empty value token",
			args:     []string{"--name="},
			expected: []string{"--name", ""},
		},
		{
			name:     "terminator passes everything through verbatim",
			args:     []string{"-x", "--", "a", "-b", "--c"},
			expected: []string{"-x", "--", "a", "-b", "--c"},
		},
		{
			name:     "clusters after the terminator are not split",
			args:     []string{"--", "-xyz", "--name=value"},
			expected: []string{"--", "-xyz", "--name=value"},
		},
		{
			name:     "lone dash is not a terminator",
			args:     []string{"-", "-x"},
			expected: []string{"-", "-x"},
		},
		{
			name:     "dash inside cluster is not special",
			args:     []string{"-o-"},
			expected: []string{"-o", "-"},
		},
		{
			name:     "plain tokens pass through",
			args:     []string{"-x", "--name", "value", "positional"},
			expected: []string{"-x", "--name", "value", "positional"},
		},
		{
			name:     "empty input",
			args:     []string{},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(tc.args, testSpec())

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("canonical sequence mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	spec := testSpec()
	raw := []string{"-xoVALUE", "--name=a=b", "-yz", "--", "-abo"}

	once := Normalize(raw, spec)
	twice := Normalize(once, spec)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("re-normalizing a canonical sequence changed it (-want +got):\n%s", diff)
	}
}

func TestSplitCluster(t *testing.T) {
	t.Parallel()

	spec := testSpec()

	// Boolean-only cluster: one token per character, nothing consumed.
	tokens, consumed := SplitCluster("-xyz", spec)
	assert.Equal(t, []string{"-x", "-y", "-z"}, tokens)
	assert.False(t, consumed)

	// Mid-cluster argument: remainder becomes the value, token consumed.
	tokens, consumed = SplitCluster("-xoVALUE", spec)
	assert.Equal(t, []string{"-x", "-o", "VALUE"}, tokens)
	assert.True(t, consumed)

	// Final-position argument-requiring option: the value must come from the
	// next token, so nothing is consumed here.
	tokens, consumed = SplitCluster("-abo", spec)
	assert.Equal(t, []string{"-a", "-b", "-o"}, tokens)
	assert.False(t, consumed)

	// Undeclared characters still split; validation is the parser's job.
	tokens, consumed = SplitCluster("-qq", spec)
	require.Equal(t, []string{"-q", "-q"}, tokens)
	assert.False(t, consumed)
}
