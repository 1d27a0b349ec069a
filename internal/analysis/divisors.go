package analysis

import "math"

// MaxExactInteger is the largest magnitude for which every integer is
// exactly representable in a float64. Divisor routines are bounded by it.
const MaxExactInteger = 1<<53 - 1

// IsInteger reports whether v has no fractional part.
func IsInteger(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Floor(v)
}

// SignOf classifies v against zero.
func SignOf(v float64) Sign {
	switch {
	case v == 0:
		return SignZero
	case v > 0:
		return SignPositive
	default:
		return SignNegative
	}
}

// ParityOf returns even or odd for integers and N/A otherwise.
func ParityOf(v float64) Parity {
	if !IsInteger(v) {
		return ParityNA
	}
	if math.Mod(math.Abs(v), 2) == 0 {
		return ParityEven
	}
	return ParityOdd
}

// magnitude returns |v| as an integer when v is an integer no larger than limit.
func magnitude(v float64, limit uint64) (uint64, bool) {
	if !IsInteger(v) {
		return 0, false
	}
	m := math.Abs(v)
	if m > float64(limit) {
		return 0, false
	}
	return uint64(m), true
}

// Factors returns the positive divisors of |v| in ascending order, or nil
// for non-integers and zero.
func Factors(v float64) []uint64 {
	m, ok := magnitude(v, MaxExactInteger)
	if !ok {
		return nil
	}
	return divisorsOf(m)
}

func divisorsOf(m uint64) []uint64 {
	if m == 0 {
		return nil
	}

	var small, large []uint64
	for i := uint64(1); i*i <= m; i++ {
		if m%i != 0 {
			continue
		}
		small = append(small, i)
		if j := m / i; j != i {
			large = append(large, j)
		}
	}

	result := make([]uint64, 0, len(small)+len(large))
	result = append(result, small...)
	for i := len(large) - 1; i >= 0; i-- {
		result = append(result, large[i])
	}
	return result
}

// PrimeFactors returns the prime factorization of |v| with multiplicity,
// ascending. It is empty for |v| < 2 and nil for non-integers.
func PrimeFactors(v float64) []uint64 {
	m, ok := magnitude(v, MaxExactInteger)
	if !ok {
		return nil
	}
	return primeFactorsOf(m)
}

func primeFactorsOf(m uint64) []uint64 {
	result := []uint64{}
	if m < 2 {
		return result
	}
	for p := uint64(2); p*p <= m; p++ {
		for m%p == 0 {
			result = append(result, p)
			m /= p
		}
	}
	if m > 1 {
		result = append(result, m)
	}
	return result
}

// distinct collapses consecutive duplicates of an ascending slice.
func distinct(xs []uint64) []uint64 {
	result := make([]uint64, 0, len(xs))
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			result = append(result, x)
		}
	}
	return result
}

// IsPrime reports whether |v| is a prime integer.
func IsPrime(v float64) bool {
	m, ok := magnitude(v, MaxExactInteger)
	if !ok {
		return false
	}
	return isPrime(m)
}

func isPrime(m uint64) bool {
	if m < 2 {
		return false
	}
	if m == 2 || m == 3 {
		return true
	}
	if m%2 == 0 {
		return false
	}
	for i := uint64(3); i*i <= m; i += 2 {
		if m%i == 0 {
			return false
		}
	}
	return true
}

// SumOfProperDivisors sums the divisors of |v| other than |v| itself. ok is
// false for non-integers.
func SumOfProperDivisors(v float64) (sum uint64, ok bool) {
	m, ok := magnitude(v, MaxExactInteger)
	if !ok {
		return 0, false
	}
	return properDivisorSum(m), true
}

func properDivisorSum(m uint64) uint64 {
	if m <= 1 {
		return 0
	}
	sum := uint64(1)
	for i := uint64(2); i*i <= m; i++ {
		if m%i != 0 {
			continue
		}
		sum += i
		if j := m / i; j != i {
			sum += j
		}
	}
	return sum
}

// Classify compares |v| with the sum of its proper divisors.
func Classify(v float64) Abundance {
	m, ok := magnitude(v, MaxExactInteger)
	if !ok {
		return AbundanceNA
	}
	return classify(m)
}

func classify(m uint64) Abundance {
	if m <= 1 {
		return AbundanceNA
	}
	switch sod := properDivisorSum(m); {
	case sod == m:
		return AbundancePerfect
	case sod > m:
		return AbundanceAbundant
	default:
		return AbundanceDeficient
	}
}
