// Package auth implements the settings password gate: a divisor-sum check of
// the user's answer and the single-session state machine around it.
package auth

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// InvalidSum is returned together with an error when no divisor sum exists.
const InvalidSum int64 = -1

var (
	ErrNotInteger = errors.New("value is not an integer")
	ErrNegative   = errors.New("divisor sum is undefined for negative values")
	ErrOverflow   = errors.New("divisor sum overflows int64")
)

// DivisorSum returns sigma(n), the sum of every positive divisor of n
// including 1 and n. DivisorSum(0) is 0.
func DivisorSum(n int64) (int64, error) {
	if n < 0 {
		return InvalidSum, ErrNegative
	}
	u := uint64(n)
	limit := isqrt(u)
	var total uint64
	for i := uint64(1); i <= limit; i++ {
		if u%i != 0 {
			continue
		}
		total += i
		if j := u / i; j != i {
			total += j
		}
		// total <= MaxInt64 before each step and i+j <= n+1, so uint64 cannot wrap here.
		if total > math.MaxInt64 {
			return InvalidSum, ErrOverflow
		}
	}
	return int64(total), nil
}

// DivisorSumOf parses s as a base-10 integer and returns its divisor sum.
func DivisorSumOf(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return InvalidSum, ErrNotInteger
	}
	return DivisorSum(n)
}

func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
