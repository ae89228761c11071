package sensors

import (
	"fmt"
	"strings"
)

// Readings derives each sensor's live/dead reading from an energization
// status mapping. A sensor bus absent from status reads dead.
func Readings(a Assignment, status map[int64]bool) map[int64]bool {
	out := make(map[int64]bool, len(a.Sensors))
	for _, s := range a.Sensors {
		out[s] = status[s]
	}

	return out
}

// Locate scans the sensors in block order and returns the index of the
// first one reading dead; the fault lies within that block, between the
// previous sensor (or the source, for index 0) and the dead one. Returns
// NoFault when every sensor reads live.
//
// A sensor missing from readings is treated as live, matching the
// first-dead convention of the reference scheme.
func Locate(a Assignment, readings map[int64]bool) int {
	for i, s := range a.Sensors {
		if live, ok := readings[s]; ok && !live {
			return i
		}
	}

	return NoFault
}

// Report renders a human-readable sensor status summary for the CLI layer.
func Report(a Assignment, readings map[int64]bool, faultyBlock int) string {
	var b strings.Builder
	rule := strings.Repeat("=", 55)

	live, dead := 0, 0
	for _, s := range a.Sensors {
		if readings[s] {
			live++
		} else {
			dead++
		}
	}

	fmt.Fprintf(&b, "%s\n  SENSOR STATUS REPORT\n%s\n", rule, rule)
	fmt.Fprintf(&b, "  Total sensors: %d\n", len(a.Sensors))
	fmt.Fprintf(&b, "  Live sensors:  %d\n", live)
	fmt.Fprintf(&b, "  Dead sensors:  %d\n\n", dead)

	for i, s := range a.Sensors {
		status := "DEAD"
		if readings[s] {
			status = "LIVE"
		}
		marker := ""
		if i == faultyBlock {
			marker = "  <- FAULT BLOCK"
		}
		fmt.Fprintf(&b, "  S%3d (bus %6d) | block: %4d buses | %s%s\n",
			i+1, s, len(a.Blocks[i]), status, marker)
	}

	b.WriteString("\n")
	if faultyBlock >= 0 && faultyBlock < len(a.Blocks) {
		fmt.Fprintf(&b, "  FAULT localized in block %d (%d buses)\n",
			faultyBlock+1, len(a.Blocks[faultyBlock]))
	} else {
		b.WriteString("  No faults detected: all sensors report LIVE\n")
	}
	b.WriteString(rule)

	return b.String()
}
