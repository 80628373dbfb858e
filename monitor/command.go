package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ezrec/rvmon/machine"
)

// Run reads monitor commands from in and writes responses to out, until
// quit or end of input. Command failures are reported to out and never end
// the session; only an input error ends it.
func (mon *Monitor) Run(in io.Reader, out io.Writer) (err error) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintf(out, "(rvmon) ")
		if !scanner.Scan() {
			fmt.Fprintf(out, "\n")
			return scanner.Err()
		}

		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}

		quit := mon.command(words, out)
		if quit {
			return
		}
	}
}

// command runs a single monitor command, reporting to out.
func (mon *Monitor) command(words []string, out io.Writer) (quit bool) {
	var err error

	defer func() {
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
		}
	}()

	switch words[0] {
	case "q", "quit":
		quit = true
	case "h", "help":
		fmt.Fprint(out, commandHelp)
	case "c":
		mon.step(math.MaxInt, out)
	case "si":
		n := 1
		if len(words) > 1 {
			n, err = strconv.Atoi(words[1])
			if err != nil || n < 1 {
				err = ErrCommand(strings.Join(words, " "))
				return
			}
		}
		mon.step(n, out)
	case "info":
		if len(words) != 2 {
			err = ErrCommand(strings.Join(words, " "))
			return
		}
		switch words[1] {
		case "r":
			fmt.Fprint(out, mon.Machine.String())
		case "w":
			for wp := range mon.Watchpoints() {
				fmt.Fprintf(out, "%d: %v = 0x%x\n", wp.No, wp.Expr, wp.Value)
			}
		default:
			err = ErrCommand(strings.Join(words, " "))
		}
	case "p":
		var value uint32
		value, err = mon.Eval.Evaluate(strings.Join(words[1:], " "))
		if err != nil {
			return
		}
		fmt.Fprintf(out, "%d (0x%x)\n", value, value)
	case "x":
		if len(words) < 3 {
			err = ErrCommand(strings.Join(words, " "))
			return
		}
		var count int
		count, err = strconv.Atoi(words[1])
		if err != nil || count < 1 {
			err = ErrCommand(strings.Join(words, " "))
			return
		}
		var address uint32
		address, err = mon.Eval.Evaluate(strings.Join(words[2:], " "))
		if err != nil {
			return
		}
		for n := range count {
			addr := address + uint32(n*4)
			fmt.Fprintf(out, "0x%08x: 0x%08x\n", addr, mon.Machine.ReadMemory(addr, 4))
		}
	case "w":
		if len(words) < 2 {
			err = ErrCommand(strings.Join(words, " "))
			return
		}
		var wp *Watchpoint
		wp, err = mon.AddWatchpoint(strings.Join(words[1:], " "))
		if err != nil {
			return
		}
		fmt.Fprintf(out, "watchpoint %d: %v = 0x%x\n", wp.No, wp.Expr, wp.Value)
	case "d":
		if len(words) != 2 {
			err = ErrCommand(strings.Join(words, " "))
			return
		}
		var no int
		no, err = strconv.Atoi(words[1])
		if err != nil {
			err = ErrCommand(strings.Join(words, " "))
			return
		}
		err = mon.DeleteWatchpoint(no)
	default:
		err = ErrCommand(words[0])
	}

	return
}

// step advances the machine, reporting traps and watchpoint hits.
func (mon *Monitor) step(n int, out io.Writer) {
	stopped, err := mon.Step(n)

	switch {
	case errors.Is(err, machine.ErrTrap):
		fmt.Fprintf(out, "trap at pc 0x%08x\n", mon.Machine.Pc)
	case err != nil:
		fmt.Fprintf(out, "%v\n", err)
	}

	for _, wp := range stopped {
		fmt.Fprintf(out, "watchpoint %d: %v\n", wp.No, wp.Expr)
		fmt.Fprintf(out, "  old = 0x%x\n  new = 0x%x\n", wp.Prior, wp.Value)
	}
}

const commandHelp = `c        continue execution
si [N]   step N instructions (default 1)
info r   dump registers
info w   list watchpoints
p EXPR   evaluate and print expression
x N EXPR print N words of memory at EXPR
w EXPR   set a watchpoint on EXPR
d N      delete watchpoint N
q        quit
`
