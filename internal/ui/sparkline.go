package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline draws availability history as a mini bar graph. Each
// value is the percentage of hosts up on one sweep (0-100), mapped on an
// absolute scale so a fully healthy network renders as a solid block
// line rather than being normalized flat. The width parameter limits
// the graph to the most recent data points.
//
// Color follows the latest value: green when most hosts answer, yellow
// when half do, red below that.
func RenderSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	var sb strings.Builder
	sb.Grow(len(data) * 4) // UTF-8 block chars are up to 3 bytes

	numLevels := len(sparklineBlockRunes)
	for _, v := range data {
		level := int(v / 100 * float64(numLevels-1))
		if level < 0 {
			level = 0
		} else if level >= numLevels {
			level = numLevels - 1
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	lastValue := data[len(data)-1]
	style := lipgloss.NewStyle().Foreground(availabilityColor(lastValue))
	return style.Render(sb.String())
}

// availabilityColor returns a color for an up-percentage.
func availabilityColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorSuccess
	case percent >= 50:
		return ColorWarning
	default:
		return ColorError
	}
}
