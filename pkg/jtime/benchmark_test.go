// File: benchmark_test.go
// Title: Format Engine Benchmarks
// Description: Benchmarks for rendering, parsing and cached compilation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial benchmarks

package jtime

import "testing"

const benchPattern = "%Y/%m/%d %I:%M:%S %p"

func BenchmarkFormat(b *testing.B) {
	tp, _ := New(1402, 7, 15, 14, 30, 0, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format(tp, benchPattern)
	}
}

func BenchmarkParse(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("1402/07/15 02:30:00 ب.ظ", benchPattern)
	}
}

func BenchmarkCompileCached(b *testing.B) {
	Compile(benchPattern)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compile(benchPattern)
	}
}

func BenchmarkParallelParse(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = Parse("15 مهر 1402", "%d %B %Y")
		}
	})
}
