package format

import (
	"fmt"
	"strings"
)

// Binary size units, largest last. Scaling stops at TiB.
var sizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

const sizeStep = 1024

// Bytes formats a byte count with 1024-based units: "0 B", "1.50 KiB".
// Plain bytes have no decimals, every larger unit has two.
func Bytes(n int64) string {
	size := float64(n)
	unit := 0
	for size >= sizeStep && unit < len(sizeUnits)-1 {
		size /= sizeStep
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%.0f %s", size, sizeUnits[unit])
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}

// Duration formats seconds as a compact duration showing at most the two
// most significant of days, hours and minutes. Below one minute the seconds
// are shown instead: "45s", "2m", "1h 2m", "1d 1h".
func Duration(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	var b strings.Builder
	switch {
	case days > 0:
		fmt.Fprintf(&b, "%dd", days)
		if hours > 0 {
			fmt.Fprintf(&b, " %dh", hours)
		}
	case hours > 0:
		fmt.Fprintf(&b, "%dh", hours)
		if minutes > 0 {
			fmt.Fprintf(&b, " %dm", minutes)
		}
	default:
		fmt.Fprintf(&b, "%dm", minutes)
	}
	return b.String()
}
