// Package ambient produces the decorative random values shown around the
// desktop: the fake encryption hash, the network latency readout and the
// assistant's idle chatter.
package ambient

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// hashAlphabet is the character set of the encryption hash readout.
const hashAlphabet = "ABCDEF0123456789"

const (
	MinLatency = 24
	MaxLatency = 55
)

// Hash returns a value like "3FA0-9C1B". Returns an empty string on error.
func Hash() string {
	buf := make([]byte, 0, 9)
	for i := 0; i < 8; i++ {
		if i == 4 {
			buf = append(buf, '-')
		}
		n, err := intn(len(hashAlphabet))
		if err != nil {
			return ""
		}
		buf = append(buf, hashAlphabet[n])
	}
	return string(buf)
}

// Latency returns a fake round trip time in milliseconds within
// [MinLatency, MaxLatency].
func Latency() int {
	n, err := intn(MaxLatency - MinLatency + 1)
	if err != nil {
		return MinLatency
	}
	return MinLatency + n
}

// Pick returns a random element of lines, or "" if there are none.
func Pick(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	n, err := intn(len(lines))
	if err != nil {
		return lines[0]
	}
	return lines[n]
}

// Chance reports true with probability percent/100.
func Chance(percent int) bool {
	n, err := intn(100)
	if err != nil {
		return false
	}
	return n < percent
}

// intn returns a uniform value in [0, n) using crypto/rand.
func intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid range %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}
