package gesture

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives trace lines from pointers with Options.Debug set.
var debugOutput io.Writer = os.Stderr

// debugf prints a trace line when the pointer was created with Debug.
func (p *Pointer) debugf(format string, args ...any) {
	if !p.opts.Debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[gesture] "+format+"\n", args...)
}

// debugCheckHandlers warns when a pointer accumulates an unusual number of
// handlers for one event type, which usually means handles are never
// removed.
const debugMaxHandlers = 64

func (p *Pointer) debugCheckHandlers(t EventType) {
	if !p.opts.Debug {
		return
	}
	if n := p.events.count(t); n > debugMaxHandlers {
		_, _ = fmt.Fprintf(debugOutput, "[gesture] warning: %d %s handlers registered (threshold %d)\n",
			n, t, debugMaxHandlers)
	}
}
