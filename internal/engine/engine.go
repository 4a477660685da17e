// Package engine implements the debt ledger and installment allocation
// engine: schedule generation, payment allocation, increase distribution,
// manual installment toggles and balance aggregation.
//
// Every operation is a pure computation over immutable Debt values: inputs
// are never mutated, each call returns a fresh value with any new history
// embedded in it. The engine holds no shared state across calls; serializing
// concurrent writers per debt is the calling layer's concern.
package engine

import "time"

// IDGenerator produces opaque unique identifiers for installments and ledger
// records. Identifiers carry no semantic meaning.
type IDGenerator interface {
	Generate() string
}

// Engine performs ledger computations. The only dependency is the id
// generator; time is always passed in explicitly so results are
// deterministic.
type Engine struct {
	idGen IDGenerator
}

// New creates a new Engine.
func New(idGen IDGenerator) *Engine {
	return &Engine{idGen: idGen}
}

// monthsAfter returns t plus n calendar months, same day-of-month. Days past
// the end of the target month normalize forward (Jan 31 + 1 month = Mar 2/3),
// matching the behavior the shop's book has always had. No clamping.
func monthsAfter(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}
