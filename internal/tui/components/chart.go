package components

import (
	"strings"

	"github.com/finfree-dev/finfree/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// HBarRow is one labeled row in a horizontal bar chart. Text is the
// preformatted value shown after the bar, so callers control masking.
type HBarRow struct {
	Label string
	Value float64
	Text  string
}

// HBarChart renders labeled horizontal bars scaled to the largest value.
// width is the total row width including label and value text.
func HBarChart(rows []HBarRow, width int, color lipgloss.Color) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW, textW := 0, 0
	for _, r := range rows {
		if len(r.Label) > labelW {
			labelW = len(r.Label)
		}
		if len(r.Text) > textW {
			textW = len(r.Text)
		}
	}
	if labelW > 16 {
		labelW = 16
	}

	barW := width - labelW - textW - 3
	if barW < 4 {
		barW = 4
	}

	peak := 0.0
	for _, r := range rows {
		if r.Value > peak {
			peak = r.Value
		}
	}
	if peak == 0 {
		peak = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		filled := int(r.Value / peak * float64(barW))
		if filled > barW {
			filled = barW
		}
		if filled < 0 {
			filled = 0
		}
		if r.Value > 0 && filled == 0 {
			filled = 1
		}
		b.WriteString(labelStyle.Render(padRight(r.Label, labelW)))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(restStyle.Render(strings.Repeat("░", barW-filled)))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(textStyle.Render(padLeft(r.Text, textW)))
	}
	return b.String()
}

func padRight(s string, w int) string {
	runes := []rune(s)
	if len(runes) > w {
		return string(runes[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-len(runes))
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
