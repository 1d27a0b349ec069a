package analysis

import (
	"encoding/json"
	"math"
	"strconv"
)

// Sign classifies a value against zero.
type Sign string

const (
	SignZero     Sign = "zero"
	SignPositive Sign = "positive"
	SignNegative Sign = "negative"
)

// Parity is only defined for integers.
type Parity string

const (
	ParityEven Parity = "even"
	ParityOdd  Parity = "odd"
	ParityNA   Parity = "N/A"
)

// Abundance classifies an integer by the sum of its proper divisors.
type Abundance string

const (
	AbundancePerfect   Abundance = "perfect"
	AbundanceAbundant  Abundance = "abundant"
	AbundanceDeficient Abundance = "deficient"
	AbundanceNA        Abundance = "N/A"
)

// Larger names which operand of a comparison is greater.
type Larger string

const (
	LargerFirst  Larger = "first"
	LargerSecond Larger = "second"
	LargerEqual  Larger = "equal"
)

// Multiple describes the divisibility relation between two truncated integers.
type Multiple string

const (
	FirstMultipleOfSecond Multiple = "first_multiple_of_second"
	SecondMultipleOfFirst Multiple = "second_multiple_of_first"
	NoMultiple            Multiple = "none"
)

// Input is a parsed number together with the text it came from.
type Input struct {
	Raw   string  `json:"raw"`
	Value float64 `json:"value"`
}

// DigitStats summarizes the decimal digits of |value|.
type DigitStats struct {
	Digits string         `json:"digits"`
	Counts map[string]int `json:"counts"`
	Count  int            `json:"count"`
	Sum    int            `json:"sum"`
}

// Report holds every single-number property. A nil Factors or PrimeFactors
// means the property does not apply; an empty PrimeFactors means there is
// nothing to factor (|value| < 2).
type Report struct {
	Raw          string     `json:"raw"`
	Value        float64    `json:"value"`
	IsInteger    bool       `json:"is_integer"`
	Sign         Sign       `json:"sign"`
	Parity       Parity     `json:"parity"`
	IsPrime      bool       `json:"is_prime"`
	Factors      []uint64   `json:"factors"`
	PrimeFactors []uint64   `json:"prime_factors"`
	Abundance    Abundance  `json:"abundance"`
	Digits       DigitStats `json:"digits"`
}

// IntegerRelations are computed on the truncated integer parts of both
// operands.
type IntegerRelations struct {
	First              int64    `json:"first"`
	Second             int64    `json:"second"`
	GCD                uint64   `json:"gcd"`
	LCM                Real     `json:"lcm"`
	CommonDivisors     []uint64 `json:"common_divisors"`
	RelativelyPrime    bool     `json:"relatively_prime"`
	SharedPrimeFactors []uint64 `json:"shared_prime_factors"`
	Multiple           Multiple `json:"multiple"`
}

// Comparison relates two reports. Integers is nil when a truncated operand
// falls outside the exact integer range.
type Comparison struct {
	First         Report            `json:"first"`
	Second        Report            `json:"second"`
	Integers      *IntegerRelations `json:"integers"`
	Sum           Real              `json:"sum"`
	Product       Real              `json:"product"`
	Difference    Real              `json:"difference"`
	AbsDifference Real              `json:"abs_difference"`
	Ratio         Ratio             `json:"ratio"`
	Larger        Larger            `json:"larger"`
	Average       Real              `json:"average"`
}

// Real is a float64 that may overflow to infinity during arithmetic. It
// encodes non-finite values as JSON strings.
type Real float64

func (r Real) String() string {
	return FormatNumber(float64(r))
}

func (r Real) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(FormatNumber(f))
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// Ratio is first/second, tagged as infinite when second is exactly zero.
type Ratio struct {
	Value    float64
	Infinite bool
}

// InfinitySymbol marks a ratio whose divisor is zero.
const InfinitySymbol = "∞"

func (r Ratio) String() string {
	if r.Infinite {
		return InfinitySymbol
	}
	return FormatNumber(r.Value)
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.Infinite {
		return []byte(`{"value":null,"infinite":true}`), nil
	}
	value, err := Real(r.Value).MarshalJSON()
	if err != nil {
		return nil, err
	}
	return append(append([]byte(`{"value":`), value...), []byte(`,"infinite":false}`)...), nil
}
