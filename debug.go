package lattice

import (
	"fmt"
	"os"
	"time"
)

// globalDebug mirrors the most recently set Host debug flag so that tree
// operations (which lack a Host pointer) can check it cheaply. Only valid
// with a single Host; multiple Hosts with differing debug modes will reflect
// whichever called SetDebugMode last.
var globalDebug bool

// frameStats holds per-frame timing metrics. Only populated in debug mode.
type frameStats struct {
	layoutTime time.Duration
	eventTime  time.Duration
	eventCount int
	repaint    bool
}

// debugLog prints per-frame pass timings to stderr.
func (h *Host) debugLog(stats frameStats) {
	if !h.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[lattice] layout: %v | events: %v (%d) | repaint: %v\n",
		stats.layoutTime, stats.eventTime, stats.eventCount, stats.repaint)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
// Structural misuse stays unchecked; a cycle introduced by a caller shows up
// here as runaway depth before the traversal passes misbehave.
const debugMaxTreeDepth = 64

func debugCheckTreeDepth(c *Control) {
	depth := 0
	for p := c; p != nil; p = p.Parent {
		depth++
		if depth > debugMaxTreeDepth {
			_, _ = fmt.Fprintf(os.Stderr, "[lattice] warning: tree depth exceeds %d (possible cycle)\n",
				debugMaxTreeDepth)
			return
		}
	}
}

// debugCheckChildCount warns on stderr if a control has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *Control) {
	if len(c.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[lattice] warning: control has %d children (threshold %d)\n",
			len(c.children), debugMaxChildCount)
	}
}
