package list

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Head and Tail when the list is empty.
var ErrEmpty = errors.New("empty list")

// ErrNotFound is returned by Find, Assoc and AssocFunc when no element
// matches.
var ErrNotFound = errors.New("no matching element")

// OutOfRangeError is returned by Nth when the index is valid but the list
// is too short.
type OutOfRangeError struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

func (e OutOfRangeError) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf("out of range: %s has no valid value, but is %d",
			e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %d to %d, but is %d",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// InvalidArgumentError is the value of panics raised by operations given a
// negative index or length. Such arguments are contract violations, so they
// are never reported as ordinary error returns.
type InvalidArgumentError struct {
	What   string
	Actual int
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s must be non-negative, but is %d",
		e.What, e.Actual)
}

// LengthMismatchError is the value of panics raised by operations that
// require two lists of equal length, like Zip and the 2-suffixed iteration
// functions.
type LengthMismatchError struct {
	Op       string
	LeftLen  int
	RightLen int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %s requires lists of equal length, but got %d and %d",
		e.Op, e.LeftLen, e.RightLen)
}

func checkNonNegative(what string, n int) {
	if n < 0 {
		panic(InvalidArgumentError{What: what, Actual: n})
	}
}

func checkSameLength(op string, len1, len2 int) {
	if len1 != len2 {
		panic(LengthMismatchError{Op: op, LeftLen: len1, RightLen: len2})
	}
}
