// Package handranks is a 7-card poker hand evaluator with joker (wild
// card) support.
//
// Given any hand of 5, 6, or 7 cards drawn from a standard 52-card deck
// or an extended 56-card deck with four suited jokers, [Lookup] returns
// the hand's poker category together with a total ordering over hands
// within the same category.
//
// The package's reason for being is the offline index construction
// ([NewBuilder], [Builder.Build]) that produces a dense transition
// table enabling an O(n) table-walk evaluation of any hand, and the
// online lookup walk ([Table.Lookup]) that consumes it. [Init]
// bootstraps both: it maps an existing table file from disk, or builds
// one (the standard table first, then the joker table using the
// standard table as an oracle) and persists it.
package handranks

// Error is a sentinel error type, following the small set of error
// kinds this package distinguishes.
type Error string

// Error satisfies the [error] interface.
func (err Error) Error() string {
	return string(err)
}

// Error values.
const (
	// ErrBadCardString is returned when a card string is malformed:
	// odd length, or a character outside the rank/suit alphabets.
	ErrBadCardString Error = "bad card string"
	// ErrInvalidHandSize is returned when lookup is asked to evaluate
	// a hand whose size is not 5, 6, or 7.
	ErrInvalidHandSize Error = "invalid hand size"
	// ErrTableIO is returned when a table file cannot be read,
	// written, or mapped.
	ErrTableIO Error = "table io failure"
	// ErrInternalImpossible is returned by [Lookup] when the table it
	// needs has not been initialized by [Init]. Rank counts and table
	// row bounds are not checked against it.
	ErrInternalImpossible Error = "internal invariant violation"
)
