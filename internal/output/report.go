package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual bar for a 0-100 score.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// MetricLine renders an aligned label/value pair.
func MetricLine(label, value string) string {
	return fmt.Sprintf(" %s %s", StyleLabel.Render(label), StyleValue.Render(value))
}

// PlantStage renders the plant level as a growth glyph ladder.
func PlantStage(level int) string {
	stages := []string{".", ",", "´", "🌱", "🌱", "🌿", "🌿", "🪴", "🪴", "🌳", "🌳"}
	if level < 0 {
		level = 0
	}
	if level >= len(stages) {
		level = len(stages) - 1
	}
	return fmt.Sprintf("%s  %s", stages[level], StyleMuted.Render(fmt.Sprintf("level %d/10", level)))
}
