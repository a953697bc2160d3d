package clsx

import (
	"strconv"
	"testing"
)

// ============================================================
// Join Benchmarks
// ============================================================
//
// Run with:
//   go test -bench=BenchmarkJoin -benchmem -count=5 ./clsx/
//
// For memory profiling:
//   go test -bench=BenchmarkJoin -benchmem -memprofile=mem.out ./clsx/
//   go tool pprof -top mem.out

// BenchmarkJoin_Strings benchmarks the plain-text fast path.
func BenchmarkJoin_Strings(b *testing.B) {
	args := []Arg{Str("btn"), Str("btn-primary"), Str("p-4"), Str("rounded")}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(args...)
	}
}

// BenchmarkJoin_Conditionals benchmarks the typical gated call site.
func BenchmarkJoin_Conditionals(b *testing.B) {
	args := []Arg{
		Str("btn"),
		If(true, "btn-active"),
		If(false, "btn-disabled"),
		Map(Entry("flex", true), Entry("hidden", false)),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(args...)
	}
}

// BenchmarkJoin_Numbers benchmarks the direct-to-buffer numeric path.
func BenchmarkJoin_Numbers(b *testing.B) {
	args := []Arg{Str("grid-cols"), Int(12), Float(1.5), Uint(3)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(args...)
	}
}

// BenchmarkJoin_Nested benchmarks flattening of nested sequences.
func BenchmarkJoin_Nested(b *testing.B) {
	args := []Arg{
		List(Str("a"), List(Str("b"), List(Str("c"), Str("d")))),
		List(),
		Some(List(Str("e"))),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(args...)
	}
}

// BenchmarkJoin_Wide benchmarks a flat call well past the capacity hint.
func BenchmarkJoin_Wide(b *testing.B) {
	args := make([]Arg, 64)
	for i := range args {
		args[i] = Str("class-" + strconv.Itoa(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(args...)
	}
}

// ============================================================
// Bridge Benchmarks
// ============================================================

// BenchmarkClasses_Mixed benchmarks the dynamic layer's conversion pass
// on top of the same join.
func BenchmarkClasses_Mixed(b *testing.B) {
	m := map[string]bool{"flex": true, "hidden": false, "grow": true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Classes("btn", true, m, []string{"p-4", "rounded"}, 10)
	}
}
