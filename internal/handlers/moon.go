package handlers

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
)

// synodicMonth is the mean length of a lunar cycle in days.
const synodicMonth = 29.530588853

// referenceNewMoon is a known new moon instant (2000-01-06 18:14 UTC).
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// phaseNames in cycle order, one per eighth of the synodic month.
var phaseNames = []string{
	"new moon",
	"waxing crescent",
	"first quarter",
	"waxing gibbous",
	"full moon",
	"waning gibbous",
	"last quarter",
	"waning crescent",
}

// MoonHandler reports the lunar phase.
type MoonHandler struct {
	out io.Writer
	now func() time.Time
}

// NewMoonHandler creates a moon handler using the wall clock.
func NewMoonHandler(out io.Writer) *MoonHandler {
	return NewMoonHandlerAt(out, time.Now)
}

// NewMoonHandlerAt creates a moon handler with an injected clock.
func NewMoonHandlerAt(out io.Writer, now func() time.Time) *MoonHandler {
	if out == nil {
		out = os.Stdout
	}
	return &MoonHandler{out: out, now: now}
}

// Get reports the current phase name.
func (h *MoonHandler) Get(args command.Args) handler.Result {
	phase := PhaseAt(h.now())

	if !args.Silent {
		fmt.Fprintf(h.out, "The moon is a %s\n", phase)
	}
	return handler.OKWithValue(phase)
}

// PhaseAt returns the phase name for the given instant.
func PhaseAt(t time.Time) string {
	days := t.Sub(referenceNewMoon).Hours() / 24
	cycle := days / synodicMonth
	frac := cycle - math.Floor(cycle)

	// Each phase spans an eighth of the cycle, centered on its instant.
	idx := int(math.Floor(frac*8+0.5)) % 8
	return phaseNames[idx]
}
