package benchmarks

import (
	"strconv"
	"testing"
	"unicode"

	"github.com/germanoeich/nirn-numbench/libnew/strategy"
	"github.com/germanoeich/nirn-numbench/libnew/util"
)

// Single string checks, without the sweep's string building or atomics.
var inputs = []struct {
	name  string
	value string
}{
	{"numeric", `9999999`},
	{"prefixed", `X9999999`},
}

var verdict bool

func benchmarkSingle(b *testing.B, check func(string) bool) {
	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				verdict = check(input.value)
			}
		})
	}
}

func BenchmarkAtoi(b *testing.B) {
	benchmarkSingle(b, func(s string) bool {
		_, err := strconv.Atoi(s)
		return err == nil
	})
}

func BenchmarkParseNonNegative(b *testing.B) {
	benchmarkSingle(b, strategy.IsNumberWithParse)
}

func BenchmarkIsDigit(b *testing.B) {
	benchmarkSingle(b, func(s string) bool {
		for _, d := range s {
			if !unicode.IsDigit(d) {
				return false
			}
		}
		return s != ""
	})
}

func BenchmarkManual(b *testing.B) {
	benchmarkSingle(b, util.IsNumericInput)
}

func BenchmarkRegexInt(b *testing.B) {
	benchmarkSingle(b, strategy.IsNumberWithRegex)
}
