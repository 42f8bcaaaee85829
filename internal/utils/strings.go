package utils

import (
	"fmt"
)

// FormatBytes formats a byte count into a human-readable string.
// Counts below 1 KiB are shown as plain bytes; larger counts use
// binary units with one decimal place.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
