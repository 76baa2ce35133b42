package scheme

import (
	"fmt"
	"math/rand"
	"testing"
)

// randomTurn generates one syntactically well-formed top-level expression
// from a small fixed vocabulary. depth bounds recursion so generation
// always terminates.
func randomTurn(r *rand.Rand, depth int) string {
	if depth <= 0 {
		return fmt.Sprintf("%d", r.Intn(201)-100)
	}
	switch r.Intn(9) {
	case 0:
		return fmt.Sprintf("%d", r.Intn(201)-100)
	case 1:
		if r.Intn(2) == 0 {
			return "#t"
		}
		return "#f"
	case 2:
		return fmt.Sprintf("(+ %s %s)", randomTurn(r, depth-1), randomTurn(r, depth-1))
	case 3:
		return fmt.Sprintf("(cons %s %s)", randomTurn(r, depth-1), randomTurn(r, depth-1))
	case 4:
		return fmt.Sprintf("(if %s %s %s)", randomTurn(r, depth-1), randomTurn(r, depth-1), randomTurn(r, depth-1))
	case 5:
		return fmt.Sprintf("(define tmp%d %s)", r.Intn(8), randomTurn(r, depth-1))
	case 6:
		return fmt.Sprintf("(list %s %s %s)", randomTurn(r, depth-1), randomTurn(r, depth-1), randomTurn(r, depth-1))
	case 7:
		return fmt.Sprintf("((lambda (x) (+ x %s)) %s)", randomTurn(r, depth-1), randomTurn(r, depth-1))
	default:
		return fmt.Sprintf("(set-car! (cons %s %s) %s)", randomTurn(r, depth-1), randomTurn(r, depth-1), randomTurn(r, depth-1))
	}
}

// addFuzzSeeds seeds the corpus with a few generator seeds; the fuzzer
// mutates these into fresh random-turn sequences.
func addFuzzSeeds(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(12345))
}

// FuzzAllocationStaysBoundedAcrossRandomTurns runs a long sequence of
// random, syntactically well-formed turns through a single interpreter and
// asserts that the live heap never grows past a small bound. A leak here
// means the collector is missing a reachable edge somewhere, since every
// turn's garbage should be fully reclaimed by the next sweep.
func FuzzAllocationStaysBoundedAcrossRandomTurns(f *testing.F) {
	addFuzzSeeds(f)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		it := New(Options{})
		const turns = 2000
		const maxLiveHandles = 1000

		for i := 0; i < turns; i++ {
			src := randomTurn(r, 4)
			_, _ = it.Run(src) // errors (e.g. + applied to a boolean) are expected and fine
			if it.HeapLen() > maxLiveHandles {
				t.Fatalf("heap grew to %d live handles after %d turns (seed %d), want <= %d",
					it.HeapLen(), i+1, seed, maxLiveHandles)
			}
		}
	})
}

// FuzzLexerNeverPanics feeds arbitrary byte strings through the public
// Run entry point and fails only if a panic escapes Run's recover
// boundary; which error category an input produces is not checked here.
func FuzzLexerNeverPanics(f *testing.F) {
	f.Add("(")
	f.Add(")")
	f.Add("(+ 1 . 2)")
	f.Add("#z")
	f.Add("'")
	f.Add("(define)")
	f.Add("....")
	f.Fuzz(func(t *testing.T, src string) {
		it := New(Options{})
		_, _ = it.Run(src) // must not panic; error categories are asserted elsewhere
	})
}
