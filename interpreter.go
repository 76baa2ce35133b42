// Package scheme wires the whole pipeline together: lexer, parser, heap,
// scope chain, evaluator, and collector. New constructs an interpreter
// with its global environment seeded from the builtin catalogue; Run
// executes one turn: parse, evaluate, serialize, sweep.
package scheme

import (
	"github.com/m0r0zk01/scheme-interpreter/internal/builtin"
	"github.com/m0r0zk01/scheme-interpreter/internal/eval"
	"github.com/m0r0zk01/scheme-interpreter/internal/gc"
	"github.com/m0r0zk01/scheme-interpreter/internal/heap"
	"github.com/m0r0zk01/scheme-interpreter/internal/parser"
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/scope"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
	"github.com/rs/zerolog"
)

// State names one of the five states a REPL turn passes through.
type State int

const (
	Idle State = iota
	Parsing
	Evaluating
	Serializing
	Sweeping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Parsing:
		return "Parsing"
	case Evaluating:
		return "Evaluating"
	case Serializing:
		return "Serializing"
	case Sweeping:
		return "Sweeping"
	default:
		return "Unknown"
	}
}

// Interpreter holds the single heap and global scope a sequence of turns
// shares. The global scope is the collector's sole sweep root and lives
// for the interpreter's entire lifetime; every other value is garbage the
// moment nothing reachable from it still points to it.
type Interpreter struct {
	heap   *heap.Heap
	eval   *eval.Evaluator
	global value.Handle
	log    zerolog.Logger
	state  State
}

// New constructs an interpreter, seeding the global environment with the
// fixed builtin catalogue.
func New(opts Options) *Interpreter {
	h := heap.New(opts.HeapCapacityHint)
	ev := eval.New(h)
	g := scope.New(h)

	for name, fn := range builtin.Catalog() {
		handle := h.AllocBuiltin(name, fn)
		scope.Define(h, g, name, handle)
	}

	return &Interpreter{
		heap:   h,
		eval:   ev,
		global: g,
		log:    opts.Logger,
		state:  Idle,
	}
}

// State reports the turn state machine's current state.
func (it *Interpreter) State() State { return it.state }

func (it *Interpreter) setState(s State) {
	it.log.Debug().
		Stringer("from", it.state).
		Stringer("to", s).
		Msg("turn: state transition")
	it.state = s
}

// HeapLen reports the number of currently live heap handles, exposed for
// the allocation-balance property tests and fuzz harnesses.
func (it *Interpreter) HeapLen() int { return it.heap.Len() }

// Run executes one full turn over src: parse, evaluate against the
// persistent global environment, serialize the result, and sweep. The
// collector runs whether or not evaluation (or parsing) raised an error —
// guaranteed here by running it from a defer — so a partially built
// intermediate graph from a failed turn never leaks.
func (it *Interpreter) Run(src string) (result string, err error) {
	defer func() {
		it.setState(Sweeping)
		gc.Collect(it.heap, it.global, it.log)
		it.setState(Idle)
	}()

	defer func() {
		if r := recover(); r != nil {
			err = scmerr.FromRecover(r)
		}
	}()

	it.setState(Parsing)
	expr, err := parser.Read(it.heap, src)
	if err != nil {
		return "", err
	}

	it.setState(Evaluating)
	res, err := it.eval.Eval(expr, it.global)
	if err != nil {
		return "", err
	}

	it.setState(Serializing)
	return Serialize(it.heap, res), nil
}
