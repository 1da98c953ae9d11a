package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow([]string{"Alice", "30"})
	table.AddRow([]string{"Bob"})
	table.AddRow([]string{"Charlie", "25", "Extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"STEP", "HEX"})
	table.AddRow([]string{"100", "#1E1B4B"})
	table.AddRow([]string{"1200", "#EEF2FF"})

	want := "STEP  HEX\n" +
		"----  -------\n" +
		"100   #1E1B4B\n" +
		"1200  #EEF2FF\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Expected empty string for empty table, got: %q", got)
	}

	output := NewTable([]string{"Column1", "Column2"}).Render()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "Column1") {
		t.Errorf("Expected header and separator only, got %q", output)
	}
}

func TestTableStyledCellsAlign(t *testing.T) {
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.TrueColor)
	styled := r.NewStyle().Background(lipgloss.Color("#6366F1")).Render("#6366F1")

	table := NewTable([]string{"HEX", "NAME"})
	table.AddRow([]string{styled, "primary"})
	table.AddRow([]string{"#FFFFFF", "white"})

	lines := strings.Split(table.Render(), "\n")
	if got, want := strings.Index(stripANSI(lines[2]), "primary"), strings.Index(lines[3], "white"); got != want {
		t.Errorf("styled row column starts at %d, plain row at %d", got, want)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
