// Package strategy holds the interchangeable ways of deciding whether a string is a non-negative integer.
package strategy

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/germanoeich/nirn-numbench/libnew/util"
)

const (
	Parse  = "parse"
	Regex  = "regex"
	Digits = "digits"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Classifier maps a string to a numeric / not numeric verdict.
type Classifier func(s string) bool

var digitsRegex = regexp.MustCompile(`^\d+$`)

// ParseNonNegative parses s as a base 10 integer in [0, 2^31-1].
// Anything else, including signs and overflow, fails with a *strconv.NumError.
func ParseNonNegative(s string) (int64, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func IsNumberWithParse(s string) bool {
	_, err := ParseNonNegative(s)
	return err == nil
}

func IsNumberWithRegex(s string) bool {
	return digitsRegex.MatchString(s)
}

func IsNumericWithDigitCheck(s string) bool {
	return util.IsNumericInput(s)
}

var registry = map[string]Classifier{
	Parse:  IsNumberWithParse,
	Regex:  IsNumberWithRegex,
	Digits: IsNumericWithDigitCheck,
}

// Names returns every strategy in reporting order.
func Names() []string {
	return []string{Parse, Regex, Digits}
}

func Lookup(name string) (Classifier, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return c, nil
}
