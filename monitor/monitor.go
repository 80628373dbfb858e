// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package monitor implements the interactive debug monitor: expression
// inspection, watchpoints, and single-step control of a machine.
package monitor

import (
	"iter"
	"log"
	"slices"

	"github.com/ezrec/rvmon/expr"
	"github.com/ezrec/rvmon/machine"
)

// Watchpoint tracks an expression across machine steps.
type Watchpoint struct {
	No    int    // Watchpoint number, unique per monitor.
	Expr  string // Watched expression text.
	Value uint32 // Value at the last scan.
	Prior uint32 // Value before the last change.
}

// Monitor drives a machine under operator control.
type Monitor struct {
	Verbose bool             // Set to enable verbose logging.
	Machine *machine.Machine // Machine under inspection.
	Eval    expr.Evaluator   // Expression evaluator bound to the machine.

	next        int
	watchpoints []*Watchpoint
}

// NewMonitor creates a monitor attached to a machine.
func NewMonitor(m *machine.Machine) (mon *Monitor) {
	mon = &Monitor{
		Machine: m,
		Eval:    expr.Evaluator{Machine: m},
		next:    1,
	}

	return
}

// AddWatchpoint registers an expression to watch. The expression is
// evaluated once to validate it and capture its initial value.
func (mon *Monitor) AddWatchpoint(expression string) (wp *Watchpoint, err error) {
	value, err := mon.Eval.Evaluate(expression)
	if err != nil {
		return
	}

	wp = &Watchpoint{No: mon.next, Expr: expression, Value: value, Prior: value}
	mon.next++
	mon.watchpoints = append(mon.watchpoints, wp)

	if mon.Verbose {
		log.Printf("monitor: watchpoint %d: %v", wp.No, wp.Expr)
	}

	return
}

// DeleteWatchpoint removes a watchpoint by number.
func (mon *Monitor) DeleteWatchpoint(no int) (err error) {
	count := len(mon.watchpoints)
	mon.watchpoints = slices.DeleteFunc(mon.watchpoints, func(wp *Watchpoint) bool {
		return wp.No == no
	})
	if len(mon.watchpoints) == count {
		err = ErrWatchpoint(no)
	}

	return
}

// Watchpoints iterates the active watchpoints, in creation order.
func (mon *Monitor) Watchpoints() iter.Seq[*Watchpoint] {
	return func(yield func(*Watchpoint) bool) {
		for _, wp := range mon.watchpoints {
			if !yield(wp) {
				return
			}
		}
	}
}

// Scan re-evaluates all watchpoints and returns those whose value changed,
// with Prior holding the previous value.
func (mon *Monitor) Scan() (changed []*Watchpoint, err error) {
	for _, wp := range mon.watchpoints {
		var value uint32
		value, err = mon.Eval.Evaluate(wp.Expr)
		if err != nil {
			return
		}
		if value != wp.Value {
			wp.Prior = wp.Value
			wp.Value = value
			changed = append(changed, wp)
		}
	}

	return
}

// Step executes up to n instructions, scanning watchpoints after each.
// It stops early at a trap, a machine error, or a watchpoint change.
func (mon *Monitor) Step(n int) (stopped []*Watchpoint, err error) {
	for range n {
		err = mon.Machine.Step()
		if err != nil {
			return
		}
		stopped, err = mon.Scan()
		if err != nil || len(stopped) != 0 {
			return
		}
	}

	return
}
