// Package acctno generates and checks the 8-character account numbers
// handed out at account creation: three letters, three digits and two
// special characters in shuffled order.
package acctno

import (
	"math/rand/v2"
	"strings"
)

// Length is the fixed account-number length.
const Length = 8

const (
	letters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
	specials = "!@#$%^&*()"
)

// Generate returns a fresh account number. Uniqueness against existing
// records is the caller's concern.
func Generate() string {
	buf := make([]byte, 0, Length)
	for range 3 {
		buf = append(buf, letters[rand.IntN(len(letters))])
	}
	for range 3 {
		buf = append(buf, digits[rand.IntN(len(digits))])
	}
	for range 2 {
		buf = append(buf, specials[rand.IntN(len(specials))])
	}
	rand.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
	return string(buf)
}

// IsWellFormed reports whether s has the shape of a generated account number.
func IsWellFormed(s string) bool {
	if len(s) != Length {
		return false
	}
	var nl, nd, ns int
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case strings.IndexByte(letters, c) >= 0:
			nl++
		case strings.IndexByte(digits, c) >= 0:
			nd++
		case strings.IndexByte(specials, c) >= 0:
			ns++
		default:
			return false
		}
	}
	return nl == 3 && nd == 3 && ns == 2
}
