package expr

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// starlarkValue evaluates an arithmetic expression with starlark, as an
// independent oracle for precedence and associativity.
func starlarkValue(t *testing.T, expression string) uint32 {
	thread := &starlark.Thread{}
	opts := syntax.FileOptions{}

	prog := "rc=" + expression + "\n"
	dict, err := starlark.ExecFileOptions(&opts, thread, "expr", prog, nil)
	if err != nil {
		t.Fatalf("%v: %v", expression, err)
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		t.Fatalf("%v: result is not an int", expression)
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		t.Fatalf("%v: result out of range", expression)
	}

	return uint32(st_int64)
}

func TestEvaluateVersusStarlark(t *testing.T) {
	assert := assert.New(t)

	ev := &Evaluator{Machine: &testMachine{}}

	// Division is excluded: starlark '/' is not integer division.
	ops := []string{"+", "-", "*"}
	rng := rand.New(rand.NewSource(1))

	var build func(depth int) string
	build = func(depth int) (out string) {
		if depth == 0 || rng.Intn(3) == 0 {
			return fmt.Sprintf("%d", rng.Intn(100))
		}
		out = build(depth-1) + ops[rng.Intn(len(ops))] + build(depth-1)
		if rng.Intn(2) == 0 {
			out = "(" + out + ")"
		}
		return
	}

	for range 256 {
		expression := build(3)
		value, err := ev.Evaluate(expression)
		assert.NoError(err, expression)
		assert.Equal(starlarkValue(t, expression), value, expression)
	}
}
