package analysis

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Parse trims raw and coerces it to a finite number. Decimal, exponent and
// 0x/0o/0b integer literals are accepted.
func Parse(raw string) (Input, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Input{}, emptyInput()
	}

	v, ok := coerce(s)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return Input{}, invalidNumber(s)
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return Input{Raw: s, Value: v}, nil
}

// FromFloat wraps an already numeric value, using its formatted text as Raw.
func FromFloat(v float64) (Input, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Input{}, invalidNumber(FormatNumber(v))
	}
	if v == 0 {
		v = 0
	}
	return Input{Raw: FormatNumber(v), Value: v}, nil
}

func coerce(s string) (float64, bool) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return coerceInteger(s[2:], base)
		}
	}

	// strconv also understands inf, nan, hex floats and digit separators;
	// none of those are plain decimal numbers.
	for _, r := range s {
		if !strings.ContainsRune("0123456789.eE+-", r) {
			return 0, false
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// coerceInteger reads unsigned digits of any length, rounding to the nearest
// float64. Values past the float64 range come back as +Inf.
func coerceInteger(digits string, base int) (float64, bool) {
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, false
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	v, _ := new(big.Float).SetInt(n).Float64()
	return v, true
}
