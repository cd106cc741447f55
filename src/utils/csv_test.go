package utils_test

import (
	"bytes"
	"strings"
	"testing"

	"inventory/src/utils"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	header := []string{"ID", "Name"}
	rows := [][]string{
		{"asset-1", "Development Workstation"},
		{"asset-2", "Office Printer, Floor 2"},
	}

	err := utils.WriteCSV(&buf, header, rows)
	if err != nil {
		t.Fatalf("expected error to be nil: %s", err.Error())
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "ID,Name" {
		t.Errorf("unexpected header line: %s", lines[0])
	}
	// fields containing commas must be quoted
	if !strings.Contains(lines[2], `"Office Printer, Floor 2"`) {
		t.Errorf("expected quoted field, got: %s", lines[2])
	}
}
