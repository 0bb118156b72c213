package stats

import (
	"bytes"
	"testing"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Name", "Words", "Source"}
	rows := [][]string{
		{"english1k", "969", "builtin"},
		{"rust", "12", "/tmp/rust.txt"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Name      Words Source" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "english1k   969 builtin" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "rust         12 /tmp/rust.txt" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Name", "N"}, [][]string{{"日本", "1"}}, nil)
	if lines[1] != "日本 1" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, []string{"A"}, [][]string{{"x"}}, nil); err != nil {
		t.Fatalf("write table: %v", err)
	}
	if buf.String() != "A\nx\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
