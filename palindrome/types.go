package palindrome

import (
	"errors"
	"fmt"
)

// Sentinel errors for palindrome product searches.
var (
	// ErrInvalidDigits is returned when the digit count is zero or negative.
	ErrInvalidDigits = errors.New("palindrome: number of digits must be positive")

	// ErrDigitsOutOfRange is returned when products of n-digit factors
	// would not fit in an int.
	ErrDigitsOutOfRange = errors.New("palindrome: number of digits exceeds MaxDigits")

	// ErrAlgorithmUnsupported is returned when the chosen algorithm is not
	// valid for the requested digit count.
	ErrAlgorithmUnsupported = errors.New("palindrome: algorithm does not support this number of digits")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("palindrome: invalid option supplied")
)

// MaxDigits is the largest supported digit count: (10^9-1)^2 < 2^63-1.
const MaxDigits = 9

// Algorithm selects the search strategy used by Search.
type Algorithm int

const (
	// Exhaustive walks every pair q ≥ p of n-digit factors, descending.
	Exhaustive Algorithm = iota

	// MultiplesOf11 restricts p to multiples of 11. Only valid for n = 3.
	MultiplesOf11
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Exhaustive:
		return "Exhaustive"
	case MultiplesOf11:
		return "MultiplesOf11"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Result is the outcome of a search.
//
// Product is P·Q. P is the larger factor and Q the smaller one.
// A zero Result means no palindromic product was found.
type Result struct {
	Product int
	P       int
	Q       int
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*Options)

// Options holds the algorithm choice and the improvement hook.
type Options struct {
	// Algo is the search strategy. Default: Exhaustive.
	Algo Algorithm

	// OnImprove is called every time the best product found so far
	// strictly increases, with the new best.
	OnImprove func(best Result)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Exhaustive algorithm and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Algo:      Exhaustive,
		OnImprove: func(Result) {},
	}
}

// WithAlgorithm selects the search strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		switch a {
		case Exhaustive, MultiplesOf11:
			o.Algo = a
		default:
			o.err = fmt.Errorf("%w: unknown algorithm %v", ErrOptionViolation, a)
		}
	}
}

// WithOnImprove registers a callback run whenever the best product grows.
// A nil fn leaves the current hook in place.
func WithOnImprove(fn func(best Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}
