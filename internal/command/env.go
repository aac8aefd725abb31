// Package command implements the calculator's subcommands. Handlers write
// result blocks to Env.Out and return *Error values instead of printing
// failures themselves.
package command

import (
	"fmt"
	"io"
	"time"

	"timecalc/internal/model"
)

const (
	longDate  = "Monday, January 02, 2006"
	shortDate = "January 02, 2006"
	isoDate   = time.DateOnly
	clockTime = "15:04"
	rule      = "====================================="
)

// Env carries everything a handler reads besides its arguments. Now is
// read once per invocation, already in the local zone.
type Env struct {
	Out io.Writer
	Now time.Time

	// Weekdays adds a WEEKDAYS LEFT line to remaining.
	Weekdays bool
	// ICS appends an iCalendar event to convert output.
	ICS        bool
	ICSSummary string
}

func (e Env) today() model.Date {
	return model.DateOf(e.Now)
}

// writeBlock prints a titled result block framed by rules.
func writeBlock(w io.Writer, title string, lines ...string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}
