package renderer

import (
	"strings"

	"github.com/etnz/chaucha"
)

// barWidth is the number of cells of a progress bar.
const barWidth = 20

// bar draws p as a text progress bar, values above 100% fill the bar.
func bar(p chaucha.Percent) string {
	filled := int(float64(p) / 100 * barWidth)
	filled = max(0, min(filled, barWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// check renders a boolean as a checkbox.
func check(b bool) string {
	if b {
		return "[x]"
	}
	return "[ ]"
}

// orDash returns s, or "-" when s is empty.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
