// Package benchtest is used for benchmarking pystr against the Go stdlib's
// strings package.
//
// Many of the inputs here were taken directly from Go's strings and bytes
// package benchmarks.
//
// It is not part of the pystr package since the stdlib functions are not
// always exact equivalents (strings.TrimSpace strips more than Str.Strip).
// Instead they are a useful measure of the overhead of pystr compared to
// the stdlib's strings package.
package benchtest
