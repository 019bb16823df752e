// Package benchmarks drives the harness through go test -bench.
package benchmarks
