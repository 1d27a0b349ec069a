package analysis

// Analyzer computes reports for one or two numbers. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	maxMagnitude uint64
}

// NewAnalyzer creates an analyzer whose divisor routines accept integers up
// to maxMagnitude. Zero or anything above MaxExactInteger selects MaxExactInteger.
func NewAnalyzer(maxMagnitude uint64) *Analyzer {
	if maxMagnitude == 0 || maxMagnitude > MaxExactInteger {
		maxMagnitude = MaxExactInteger
	}
	return &Analyzer{maxMagnitude: maxMagnitude}
}

// MaxMagnitude reports the largest integer the divisor routines will accept.
func (a *Analyzer) MaxMagnitude() uint64 {
	return a.maxMagnitude
}

// Analyze parses raw and reports its properties.
func (a *Analyzer) Analyze(raw string) (Report, error) {
	in, err := Parse(raw)
	if err != nil {
		return Report{}, err
	}
	return a.Report(in), nil
}

// AnalyzeFloat reports the properties of an already numeric value.
func (a *Analyzer) AnalyzeFloat(v float64) (Report, error) {
	in, err := FromFloat(v)
	if err != nil {
		return Report{}, err
	}
	return a.Report(in), nil
}

// Report computes every property of a validated input.
func (a *Analyzer) Report(in Input) Report {
	v := in.Value
	r := Report{
		Raw:       in.Raw,
		Value:     v,
		IsInteger: IsInteger(v),
		Sign:      SignOf(v),
		Parity:    ParityOf(v),
		Abundance: AbundanceNA,
		Digits:    DigitStatsOf(v),
	}

	if m, ok := magnitude(v, a.maxMagnitude); ok {
		r.IsPrime = isPrime(m)
		r.Factors = divisorsOf(m)
		r.PrimeFactors = primeFactorsOf(m)
		r.Abundance = classify(m)
	}

	return r
}

// Compare analyzes both inputs and relates them. A parse failure on either
// side is returned tagged with "first" or "second".
func (a *Analyzer) Compare(rawA, rawB string) (Comparison, error) {
	first, err := a.Analyze(rawA)
	if err != nil {
		return Comparison{}, withOperand(err, "first")
	}
	second, err := a.Analyze(rawB)
	if err != nil {
		return Comparison{}, withOperand(err, "second")
	}
	return compareValues(first, second, a.maxMagnitude), nil
}

// CompareFloat relates two already numeric values.
func (a *Analyzer) CompareFloat(v1, v2 float64) (Comparison, error) {
	first, err := a.AnalyzeFloat(v1)
	if err != nil {
		return Comparison{}, withOperand(err, "first")
	}
	second, err := a.AnalyzeFloat(v2)
	if err != nil {
		return Comparison{}, withOperand(err, "second")
	}
	return compareValues(first, second, a.maxMagnitude), nil
}
