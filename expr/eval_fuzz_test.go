package expr

import (
	"testing"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("1+2*3")
	f.Add("(1+2)*3")
	f.Add("*0x10")
	f.Add("-$sp+4")
	f.Add("1&&0==0")
	f.Add("((((1))))")
	f.Add("1-2-3-4-5")
	f.Add("$$0")

	f.Fuzz(func(t *testing.T, input string) {
		ev := &Evaluator{Machine: newTestMachine()}

		value, err := ev.Evaluate(input)
		if err != nil {
			// Malformed input is rejected, never fatal.
			return
		}

		again, err := ev.Evaluate(input)
		if err != nil {
			t.Fatalf("%q: second evaluation failed: %v", input, err)
		}
		if value != again {
			t.Fatalf("%q: %v != %v", input, value, again)
		}
	})
}
