package analysis

import "testing"

// BenchmarkAnalyze measures a full single-number report for a composite
// with many divisors.
func BenchmarkAnalyze(b *testing.B) {
	analyzer := NewAnalyzer(0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := analyzer.Analyze("720720"); err != nil {
			b.Fatalf("Analyze failed: %v", err)
		}
	}
}

// BenchmarkIsPrimeLarge is the worst case for trial division: a prime just
// below the exact integer limit.
func BenchmarkIsPrimeLarge(b *testing.B) {
	const largePrime = 9007199254740881

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !IsPrime(largePrime) {
			b.Fatal("expected prime")
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	analyzer := NewAnalyzer(0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := analyzer.Compare("123456", "7890"); err != nil {
			b.Fatalf("Compare failed: %v", err)
		}
	}
}
