package output

import (
	"strings"
	"testing"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if len(got) != tc.want {
				t.Errorf("pad(%q, %d) len = %d, want %d", tc.input, tc.width, len(got), tc.want)
			}
		})
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("User", "Total")
	tbl.AddRow("Mika", "72")
	tbl.AddRow("Noor", "58")

	out := tbl.Render()

	for _, want := range []string{"User", "Total", "Mika", "Noor", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	// Header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	if out := tbl.Render(); out != "" {
		t.Errorf("expected empty output for empty table, got %q", out)
	}
}

func TestTable_ColumnWidths(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "LongHeader")
	tbl.AddRow("VeryLongValue", "X")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "VeryLongValue") {
		t.Error("expected data row to contain 'VeryLongValue'")
	}
}

func TestScoreBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		name   string
		score  float64
		filled int
	}{
		{"empty", 0, 0},
		{"half", 50, 5},
		{"full", 100, 10},
		{"over full clamps", 130, 10},
		{"negative clamps", -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bar := ScoreBar(tc.score, 10)
			if got := strings.Count(bar, "█"); got != tc.filled {
				t.Errorf("ScoreBar(%f) has %d filled cells, want %d", tc.score, got, tc.filled)
			}
			if got := strings.Count(bar, "░"); got != 10-tc.filled {
				t.Errorf("ScoreBar(%f) has %d empty cells, want %d", tc.score, got, 10-tc.filled)
			}
		})
	}
}

func TestPlantStage_Bounds(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := PlantStage(-3); !strings.Contains(got, "level 0/10") {
		t.Errorf("expected negative level clamped to 0, got %q", got)
	}
	if got := PlantStage(99); !strings.Contains(got, "level 10/10") {
		t.Errorf("expected oversized level clamped to 10, got %q", got)
	}
}
