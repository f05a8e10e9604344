package palindrome

import "strconv"

// IsPalindrome reports whether the decimal digits of number read the same
// forwards and backwards. Single digits are palindromes; negative numbers
// are not.
//
// Complexity: O(d) time and memory, d = number of digits.
func IsPalindrome(number int) bool {
	if number < 0 {
		return false
	}

	return IsPalindromeString(strconv.Itoa(number))
}

// IsPalindromeString compares runes from both ends toward the middle.
// Strings shorter than two runes are palindromes.
func IsPalindromeString(s string) bool {
	r := []rune(s)
	for left, right := 0, len(r)-1; left < right; left, right = left+1, right-1 {
		if r[left] != r[right] {
			return false
		}
	}

	return true
}

// IsPalindromeDigits splits digits around the center and checks that the
// left half equals the reversed right half. The middle element of an odd
// length slice is ignored.
func IsPalindromeDigits(digits []int) bool {
	n := len(digits)
	if n < 2 {
		return true
	}
	left := digits[:n/2]
	right := digits[n-n/2:] // skips the middle for odd n
	for i := range left {
		if left[i] != right[len(right)-1-i] {
			return false
		}
	}

	return true
}

// Digits returns the decimal digits of number, most significant first.
// Digits(0) is [0]; negative numbers yield nil.
func Digits(number int) []int {
	if number < 0 {
		return nil
	}
	if number == 0 {
		return []int{0}
	}

	var count int
	for x := number; x > 0; x /= 10 {
		count++
	}
	digits := make([]int, count)
	for i := count - 1; number > 0; i-- {
		digits[i] = number % 10
		number /= 10
	}

	return digits
}
