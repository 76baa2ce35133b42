package scheme

import "github.com/rs/zerolog"

// Options configures an Interpreter at construction time, threaded
// explicitly instead of read from package-level state so multiple
// interpreters can coexist in one process.
type Options struct {
	// Logger receives structured debug events for collector sweeps and
	// turn state transitions. Leave it unset (or pass zerolog.Nop()) to
	// discard them, so embedding the interpreter never forces log output.
	Logger zerolog.Logger

	// HeapCapacityHint sizes the heap's backing map up front. It is
	// purely an allocation hint; the heap still grows without bound.
	HeapCapacityHint int
}
