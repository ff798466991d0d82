package main

import (
	"fmt"
	"time"
)

// formatMillis renders a millisecond count as a rounded duration.
func formatMillis(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).Round(time.Millisecond).String()
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func formatIndices(idx []int) string {
	switch len(idx) {
	case 0:
		return "-"
	case 1:
		return fmt.Sprintf("%d", idx[0])
	default:
		return fmt.Sprintf("%d-%d", idx[0], idx[len(idx)-1])
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
