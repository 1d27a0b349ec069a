package analysis

import "math"

// GCD is Euclid's algorithm on |a| and |b|; GCD(0, y) = y.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM is zero when either operand is zero. The result is a Real because the
// least common multiple of two exact integers can exceed the exact range.
func LCM(a, b uint64) Real {
	if a == 0 || b == 0 {
		return 0
	}
	return Real(float64(a/GCD(a, b)) * float64(b))
}

// MultipleOf relates two truncated integers by divisibility.
func MultipleOf(first, second int64) Multiple {
	switch {
	case second != 0 && first%second == 0:
		return FirstMultipleOfSecond
	case first != 0 && second%first == 0:
		return SecondMultipleOfFirst
	default:
		return NoMultiple
	}
}

// SharedPrimeFactors intersects the distinct prime factors of a and b.
func SharedPrimeFactors(a, b uint64) []uint64 {
	pa := distinct(primeFactorsOf(a))
	pb := distinct(primeFactorsOf(b))

	shared := []uint64{}
	i, j := 0, 0
	for i < len(pa) && j < len(pb) {
		switch {
		case pa[i] == pb[j]:
			shared = append(shared, pa[i])
			i++
			j++
		case pa[i] < pb[j]:
			i++
		default:
			j++
		}
	}
	return shared
}

// integerRelations truncates both values toward zero. It returns nil when
// either truncated magnitude exceeds limit.
func integerRelations(a, b float64, limit uint64) *IntegerRelations {
	ta, tb := math.Trunc(a), math.Trunc(b)
	ma, okA := magnitude(ta, limit)
	mb, okB := magnitude(tb, limit)
	if !okA || !okB {
		return nil
	}

	g := GCD(ma, mb)
	common := divisorsOf(g)
	if common == nil {
		common = []uint64{}
	}

	return &IntegerRelations{
		First:              int64(ta),
		Second:             int64(tb),
		GCD:                g,
		LCM:                LCM(ma, mb),
		CommonDivisors:     common,
		RelativelyPrime:    g == 1,
		SharedPrimeFactors: SharedPrimeFactors(ma, mb),
		Multiple:           MultipleOf(int64(ta), int64(tb)),
	}
}

// compareValues fills the arithmetic half of a comparison from the original
// real values.
func compareValues(first, second Report, limit uint64) Comparison {
	n1, n2 := first.Value, second.Value

	ratio := Ratio{Infinite: true}
	if n2 != 0 {
		ratio = Ratio{Value: n1 / n2}
	}

	larger := LargerEqual
	switch {
	case n1 > n2:
		larger = LargerFirst
	case n1 < n2:
		larger = LargerSecond
	}

	return Comparison{
		First:         first,
		Second:        second,
		Integers:      integerRelations(n1, n2, limit),
		Sum:           Real(n1 + n2),
		Product:       Real(n1 * n2),
		Difference:    Real(n1 - n2),
		AbsDifference: Real(math.Abs(n1 - n2)),
		Ratio:         ratio,
		Larger:        larger,
		Average:       Real((n1 + n2) / 2),
	}
}
