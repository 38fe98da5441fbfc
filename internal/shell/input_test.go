package shell

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func newPrompter(input string) (*prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return &prompter{in: bufio.NewReader(strings.NewReader(input)), out: &out}, &out
}

func TestReadChoiceRetriesOnGarbage(t *testing.T) {
	p, out := newPrompter("abc\n\n7\n")
	n, err := p.readChoice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Errorf("expected 7, got %d", n)
	}
	if !strings.Contains(out.String(), "Your input is invalid!") {
		t.Error("expected a retry message for non-numeric input")
	}
}

func TestReadLineTrims(t *testing.T) {
	p, _ := newPrompter("  hello  \n")
	got, err := p.readLine("> ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected trimmed line, got %q", got)
	}
}

func TestReadIntRejectsGarbage(t *testing.T) {
	p, _ := newPrompter("twelve\n")
	if _, err := p.readInt("> "); err == nil {
		t.Fatal("expected an error for non-numeric input")
	}
}

func TestRenderTableAlignment(t *testing.T) {
	var out bytes.Buffer
	renderTable(&out, []string{"A", "Long header"}, [][]string{
		{"x", "y"},
		{"wide cell", "z"},
	})
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out.String())
	}
	width := len(lines[0])
	for i, ln := range lines {
		if len(ln) != width {
			t.Errorf("line %d has width %d, expected %d", i, len(ln), width)
		}
	}
}
