package harness

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"unicode"
	"unicode/utf8"
)

const DefaultSweepSize = 10_000_000

// MaxSweepSize keeps every swept value inside the range ParseNonNegative accepts,
// so all strategies agree on every generated string.
const MaxSweepSize int64 = math.MaxInt32 + 1

var (
	ErrPartitionMismatch = errors.New("accumulators do not partition the sweep")
	ErrInvalidPrefix     = errors.New("prefix must be empty or start with a non-digit")
	ErrSweepTooLarge     = errors.New("sweep size exceeds the non-negative int32 range")
)

// State is the pair of accumulators owned by one measured invocation.
type State struct {
	Positive atomic.Int64
	Negative atomic.Int64
}

func NewState() *State {
	return &State{}
}

// Verify checks that every value of a sweep of the given size landed in exactly one bucket.
func (s *State) Verify(size int) error {
	pos, neg := s.Positive.Load(), s.Negative.Load()
	if want := ExpectedTotal(size); pos+neg != want {
		return fmt.Errorf("%w: positive=%d negative=%d want total %d", ErrPartitionMismatch, pos, neg, want)
	}
	return nil
}

// ExpectedTotal is the sum of 0..size-1.
func ExpectedTotal(size int) int64 {
	n := int64(size)
	if n <= 0 {
		return 0
	}
	return n * (n - 1) / 2
}

func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(prefix)
	if r == utf8.RuneError || unicode.IsDigit(r) || r == '+' || r == '-' {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	return nil
}

// PrefixLabel renders a prefix for logs and metric labels.
func PrefixLabel(prefix string) string {
	if prefix == "" {
		return "none"
	}
	return prefix
}
