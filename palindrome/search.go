package palindrome

import "fmt"

// LargestProduct returns the largest palindrome that is the product of two
// n-digit integers, using the Exhaustive algorithm.
//
// Example:
//
//	v, _ := LargestProduct(2) // 9009 = 91 × 99
func LargestProduct(n int) (int, error) {
	res, err := Search(n)
	if err != nil {
		return 0, err
	}

	return res.Product, nil
}

// Search validates n and the options, then runs the selected algorithm.
//
// Contracts:
//   - 1 ≤ n ≤ MaxDigits.
//   - MultiplesOf11 requires n == 3.
//   - OnImprove observes a strictly increasing sequence of products.
//
// Errors: ErrInvalidDigits, ErrDigitsOutOfRange, ErrAlgorithmUnsupported,
// ErrOptionViolation.
func Search(n int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	smallest, largest, err := DigitBounds(n)
	if err != nil {
		return Result{}, err
	}

	switch o.Algo {
	case Exhaustive:
		return searchExhaustive(smallest, largest, o.OnImprove), nil
	case MultiplesOf11:
		// abccba = 11·(9091a + 910b + 100c) holds for six-digit products only.
		if n != 3 {
			return Result{}, fmt.Errorf("%w: %v needs 3 digits, got %d", ErrAlgorithmUnsupported, o.Algo, n)
		}

		return searchMultiplesOf11(smallest, largest, o.OnImprove), nil
	default:
		return Result{}, fmt.Errorf("%w: unknown algorithm %v", ErrOptionViolation, o.Algo)
	}
}

// searchExhaustive scans p from largest down to smallest and, for each p,
// q from largest down to p.
func searchExhaustive(smallest, largest int, onImprove func(Result)) Result {
	var best Result
	for p := largest; p >= smallest; p-- {
		if cand, ok := bestForFactor(p, largest, p, best.Product); ok {
			best = cand
			onImprove(best)
		}
	}

	return best
}

// searchMultiplesOf11 scans p over the multiples of 11 in [smallest, largest]
// and q over the whole range.
func searchMultiplesOf11(smallest, largest int, onImprove func(Result)) Result {
	var best Result
	for p := LargestMultiple(11, largest); p >= smallest; p -= 11 {
		if cand, ok := bestForFactor(p, largest, smallest, best.Product); ok {
			best = cand
			onImprove(best)
		}
	}

	return best
}

// bestForFactor descends q from qHigh to qLow and returns the first
// palindromic p·q above floor. It stops as soon as p·q ≤ floor, because
// smaller q can only give smaller products. ok is false if nothing beats floor.
//
// Complexity: O((qHigh-qLow)·d) time.
func bestForFactor(p, qHigh, qLow, floor int) (res Result, ok bool) {
	for q := qHigh; q >= qLow; q-- {
		product := p * q
		if product <= floor {
			return Result{}, false
		}
		if IsPalindrome(product) {
			return newResult(p, q), true
		}
	}

	return Result{}, false
}

// newResult orders the factors so that P ≥ Q.
func newResult(a, b int) Result {
	if a < b {
		a, b = b, a
	}

	return Result{Product: a * b, P: a, Q: b}
}
