// Package euler collects small, self-contained solutions to introductory
// numeric puzzles, each written as a pure-Go package with its algorithms,
// complexity notes, examples and benchmarks side by side.
//
// What's inside:
//
//	palindrome/ — largest palindrome made from the product of two n-digit
//	              numbers; exhaustive and multiples-of-11 searches with
//	              early-termination pruning, plus digit-level palindrome checks
//
// Every function is deterministic and side-effect free: no globals, no
// logging, no I/O. Invalid input is reported through sentinel errors that
// callers match with errors.Is.
//
//	go get github.com/katalvlaran/euler/palindrome
package euler
