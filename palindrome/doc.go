// Package palindrome finds the largest palindromic number that is the
// product of two n‑digit integers, and provides the digit-level palindrome
// checks the search is built on.
//
// What:
//
//   - IsPalindrome: decimal digits of a non-negative integer read the same
//     both ways (9009 yes, 9010 no). Alternative checks:
//   - IsPalindromeString: two-pointer comparison over a string
//   - IsPalindromeDigits: compare the left half with the reversed right half
//   - Search / LargestProduct: maximal p·q with p, q ∈ [10^(n-1), 10^n-1]
//     whose decimal form is a palindrome. Two algorithms:
//   - Exhaustive:    p descends over the whole range, q descends from the
//     top of the range down to p (q ≥ p, products are commutative)
//   - MultiplesOf11: p descends over multiples of 11 only, q over the whole
//     range. Valid for n = 3 only, see below.
//
// Pruning (both algorithms):
//
//  1. For a fixed p the product p·q shrinks as q descends, so once
//     p·q ≤ best the inner loop stops.
//  2. For the same reason the first palindrome met for a fixed p is the
//     largest one for that p; it is recorded and the inner loop stops.
//
// Why multiples of 11:
//
//	A six-digit palindrome abccba = 100001a + 10010b + 1100c
//	                               = 11·(9091a + 910b + 100c),
//	so for two 3-digit factors one of them must carry the factor 11.
//	The identity is specific to six-digit products; MultiplesOf11 returns
//	ErrAlgorithmUnsupported for any n other than 3.
//
// Complexity:
//
//   - IsPalindrome:   Time O(d), Memory O(d)  (d = decimal digits)
//   - Exhaustive:     Time O(N²·d) worst case, N = 9·10^(n-1)
//   - MultiplesOf11:  Time O(N²·d/11) worst case
//     Pruning keeps both far below the bound in practice.
//
// Errors:
//
//   - ErrInvalidDigits         n ≤ 0
//   - ErrDigitsOutOfRange      n > MaxDigits (products would overflow int64)
//   - ErrAlgorithmUnsupported  MultiplesOf11 with n ≠ 3
//   - ErrOptionViolation       unknown Algorithm passed to WithAlgorithm
//
// Usage:
//
//	res, err := palindrome.Search(3, palindrome.WithAlgorithm(palindrome.MultiplesOf11))
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(res.Product, res.P, res.Q) // 906609 993 913
package palindrome
