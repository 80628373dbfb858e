package monitor

import (
	"github.com/ezrec/rvmon/translate"
)

var f = translate.From

// ErrWatchpoint is a watchpoint number with no watchpoint.
type ErrWatchpoint int

func (err ErrWatchpoint) Error() string {
	return f("watchpoint %d unknown", int(err))
}

// ErrCommand is a monitor command that did not parse.
type ErrCommand string

func (err ErrCommand) Error() string {
	return f("bad command '%v'", string(err))
}
