package navdoc

import (
	"fmt"
	"strings"
)

// DefaultProgressWidth is the number of cells in a rendered progress bar.
const DefaultProgressWidth = 40

// FormatProgressBar renders "[████----] 50.00%" for current out of total.
func FormatProgressBar(current, total, width int) string {
	var filled int
	var pct float64
	if total > 0 {
		filled = width * current / total
		pct = float64(current) / float64(total) * 100
	}
	filled = max(0, min(filled, width))

	bar := strings.Repeat("█", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("[%s] %5.2f%%", bar, pct)
}
