// Package builtin implements the fixed catalogue of primitive procedures
// and special forms bound into the global environment at startup.
package builtin

import "github.com/m0r0zk01/scheme-interpreter/internal/value"

// Table maps a builtin's bound name to its implementation.
type Table map[string]value.BuiltinFn

// Catalog returns the fixed builtin table.
func Catalog() Table {
	t := make(Table)
	addArithmetic(t)
	addComparisons(t)
	addPredicates(t)
	addLogical(t)
	addPairsAndLists(t)
	addSpecialForms(t)
	return t
}
