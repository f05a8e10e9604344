package palindrome

import "fmt"

// DigitBounds returns the inclusive range [10^(n-1), 10^n-1] of n-digit integers.
//
// Errors: ErrInvalidDigits for n ≤ 0, ErrDigitsOutOfRange for n > MaxDigits.
func DigitBounds(n int) (smallest, largest int, err error) {
	if err = validateDigits(n); err != nil {
		return 0, 0, err
	}
	smallest = 1
	for i := 1; i < n; i++ {
		smallest *= 10
	}

	return smallest, smallest*10 - 1, nil
}

// LargestMultiple returns the largest multiple of divisor in [1, limit],
// or 0 if there is none (divisor ≤ 0 or divisor > limit).
func LargestMultiple(divisor, limit int) int {
	if divisor <= 0 || limit < divisor {
		return 0
	}

	return limit - limit%divisor
}

// validateDigits rejects digit counts outside [1, MaxDigits].
func validateDigits(n int) error {
	switch {
	case n <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidDigits, n)
	case n > MaxDigits:
		return fmt.Errorf("%w: got %d, max %d", ErrDigitsOutOfRange, n, MaxDigits)
	}

	return nil
}
