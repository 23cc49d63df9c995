package testutil

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertGuardsBalanced checks that every "#ifdef SYM" in text is closed by a
// matching "#endif /* SYM */" before the next guard opens. Guards never nest
// in generated output.
func AssertGuardsBalanced(t *testing.T, text string) {
	t.Helper()

	open := ""
	scanner := bufio.NewScanner(strings.NewReader(text))
	for line := 1; scanner.Scan(); line++ {
		l := scanner.Text()
		switch {
		case strings.HasPrefix(l, "#ifdef "):
			require.Empty(t, open, "line %d opens a guard inside %q", line, open)
			open = strings.TrimPrefix(l, "#ifdef ")
		case strings.HasPrefix(l, "#endif /* ") && open != "":
			require.Equal(t, "#endif /* "+open+" */", l, "line %d closes the wrong guard", line)
			open = ""
		}
	}
	require.Empty(t, open, "guard %q is never closed", open)
}

// GuardOf returns the symbol of the "#ifdef" block enclosing the first line
// of text that contains needle, or "" when that line is unguarded.
func GuardOf(t *testing.T, text, needle string) string {
	t.Helper()

	open := ""
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		l := scanner.Text()
		switch {
		case strings.HasPrefix(l, "#ifdef "):
			open = strings.TrimPrefix(l, "#ifdef ")
		case strings.HasPrefix(l, "#endif /* "+open+" */"):
			open = ""
		case strings.Contains(l, needle):
			return open
		}
	}
	require.Failf(t, "needle not found", "%q does not occur in the text", needle)
	return ""
}
