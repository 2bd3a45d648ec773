package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTableRender(t *testing.T) {
	color.NoColor = true

	var b strings.Builder
	table := NewTable(&b, "ID", "CATEGORY")
	table.AddRow("tabs", "navigation")
	table.AddRow("dialog", "overlay")
	table.Render()

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("header missing: %q", lines[0])
	}
	if !strings.Contains(lines[2], "tabs") || !strings.Contains(lines[2], "navigation") {
		t.Errorf("row missing cells: %q", lines[2])
	}

	// Columns align on the widest cell
	if strings.Index(lines[2], "navigation") != strings.Index(lines[3], "overlay") {
		t.Errorf("columns misaligned:\n%q\n%q", lines[2], lines[3])
	}
}

func TestTableRenderEmptyHeaders(t *testing.T) {
	var b strings.Builder
	NewTable(&b).Render()
	if b.Len() != 0 {
		t.Errorf("expected no output, got %q", b.String())
	}
}
