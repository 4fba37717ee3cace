package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// interaction runs a whole scripted session and returns both streams.
func interaction(t *testing.T, input string) (stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	session := NewSession(&out, &errOut)
	// Run's error only reflects the exit status; the streams carry the
	// interesting output.
	_ = session.Run(strings.NewReader(input))
	return out.String(), errOut.String()
}

func TestVariables(t *testing.T) {
	in := `
    a = 23
    b = a * 2
  `
	stdout, stderr := interaction(t, in)

	if stdout != "23\n46\n" {
		t.Errorf("expected output %q, got %q", "23\n46\n", stdout)
	}
	if stderr != "" {
		t.Errorf("expected no errors, got %q", stderr)
	}
}

func TestBlankLinesIgnored(t *testing.T) {
	stdout, stderr := interaction(t, "\n\n   \n1+1\n\n")

	if stdout != "2\n" {
		t.Errorf("expected output %q, got %q", "2\n", stdout)
	}
	if stderr != "" {
		t.Errorf("expected no errors, got %q", stderr)
	}
}

func TestLexError(t *testing.T) {
	stdout, stderr := interaction(t, "4 ^ 7\n")

	if stdout != "" {
		t.Errorf("expected no output, got %q", stdout)
	}
	if stderr != "Unrecognized:^ 7\n" {
		t.Errorf("expected error %q, got %q", "Unrecognized:^ 7\n", stderr)
	}
}

func TestUnparsedWarning(t *testing.T) {
	stdout, stderr := interaction(t, "a = 2 *\n")

	// The partial parse still evaluates: a is bound and 2 is printed.
	if stdout != "2\n" {
		t.Errorf("expected output %q, got %q", "2\n", stdout)
	}
	if stderr != "Warning: stuff unparsed on the line: [*]\n" {
		t.Errorf("unexpected warning: %q", stderr)
	}
}

// A failed line reports on stderr but never resets the session: bindings made
// before the failure survive into later lines.
func TestErrorKeepsContext(t *testing.T) {
	in := `
    a = 23
    a + nope
    a + 1
  `
	stdout, stderr := interaction(t, in)

	if stdout != "23\n24\n" {
		t.Errorf("expected output %q, got %q", "23\n24\n", stdout)
	}
	if !strings.Contains(stderr, "unknown variable nope") {
		t.Errorf("expected an unknown-variable report, got %q", stderr)
	}
}

// When a single line's sequence fails partway through, every assignment
// before the failure point survives into later lines — not just ones that
// landed on the running context itself.
func TestMidSequenceErrorKeepsEarlierAssignments(t *testing.T) {
	in := `
    a = 1, b = 2, c = nope
    b
    a + b
  `
	stdout, stderr := interaction(t, in)

	if stdout != "2\n3\n" {
		t.Errorf("expected output %q, got %q", "2\n3\n", stdout)
	}
	if !strings.Contains(stderr, "unknown variable nope") {
		t.Errorf("expected an unknown-variable report, got %q", stderr)
	}
}

func TestCounting(t *testing.T) {
	in := `
    counter_state = 0
    cnt = 0
    count ~ (counter_state, cnt=cnt+1, this)
    counter_state = count
    (counter_state cnt)
    counter_state = count
    counter_state = count
    (counter_state cnt)
    (counter_state cnt)
    counter_state = count
    (counter_state cnt)
    `
	stdout, stderr := interaction(t, in)

	if stderr != "" {
		t.Fatalf("expected no errors, got %q", stderr)
	}

	olines := strings.Split(stdout, "\n")
	if olines[4] != "1" {
		t.Errorf("expected line 4 to be 1, got %q", olines[4])
	}
	if olines[7] != "3" {
		t.Errorf("expected line 7 to be 3, got %q", olines[7])
	}
	if olines[8] != "3" {
		t.Errorf("expected line 8 to be 3, got %q", olines[8])
	}
	if olines[10] != "4" {
		t.Errorf("expected line 10 to be 4, got %q", olines[10])
	}
}

func TestScriptExitStatus(t *testing.T) {
	var out, errOut bytes.Buffer

	session := NewSession(&out, &errOut)
	if err := session.Run(strings.NewReader("a = 1\nb = 2\n")); err != nil {
		t.Errorf("expected a clean run, got %v", err)
	}

	session = NewSession(&out, &errOut)
	if err := session.Run(strings.NewReader("a = 1\n4 / 0\n")); err == nil {
		t.Error("expected a failing run to report an error")
	}
}

// Snapshot of a whole session transcript, fixture style.
func TestSessionTranscript(t *testing.T) {
	in := `
    a = 2*3
    c = (b = a+2, 2*b)
    f ~ a + c
    f
    con = (x=1, y=2, this)
    (z=3, con, x+z)
    then ~ 10, else ~ 20, (if a == 6)
    4 / 0
    a
  `
	stdout, stderr := interaction(t, in)

	snaps.MatchSnapshot(t, stdout)
	snaps.MatchSnapshot(t, stderr)
}
