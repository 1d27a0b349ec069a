package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalyzer(t *testing.T) {
	tests := []struct {
		name     string
		limit    uint64
		expected uint64
	}{
		{name: "zero selects exact range", limit: 0, expected: MaxExactInteger},
		{name: "too large is clamped", limit: 1 << 60, expected: MaxExactInteger},
		{name: "smaller limit kept", limit: 1000, expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewAnalyzer(tt.limit)

			assert.NotNil(t, analyzer)
			assert.Equal(t, tt.expected, analyzer.MaxMagnitude())
		})
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	analyzer := NewAnalyzer(0)

	tests := []struct {
		name     string
		input    string
		expected Report
	}{
		{
			name:  "abundant even integer",
			input: "42",
			expected: Report{
				Raw:          "42",
				Value:        42,
				IsInteger:    true,
				Sign:         SignPositive,
				Parity:       ParityEven,
				IsPrime:      false,
				Factors:      []uint64{1, 2, 3, 6, 7, 14, 21, 42},
				PrimeFactors: []uint64{2, 3, 7},
				Abundance:    AbundanceAbundant,
				Digits: DigitStats{
					Digits: "42",
					Counts: map[string]int{"4": 1, "2": 1},
					Count:  2,
					Sum:    6,
				},
			},
		},
		{
			name:  "negative integer keeps multiplicity",
			input: "-8",
			expected: Report{
				Raw:          "-8",
				Value:        -8,
				IsInteger:    true,
				Sign:         SignNegative,
				Parity:       ParityEven,
				Factors:      []uint64{1, 2, 4, 8},
				PrimeFactors: []uint64{2, 2, 2},
				Abundance:    AbundanceDeficient,
				Digits: DigitStats{
					Digits: "8",
					Counts: map[string]int{"8": 1},
					Count:  1,
					Sum:    8,
				},
			},
		},
		{
			name:  "prime",
			input: "13",
			expected: Report{
				Raw:          "13",
				Value:        13,
				IsInteger:    true,
				Sign:         SignPositive,
				Parity:       ParityOdd,
				IsPrime:      true,
				Factors:      []uint64{1, 13},
				PrimeFactors: []uint64{13},
				Abundance:    AbundanceDeficient,
				Digits: DigitStats{
					Digits: "13",
					Counts: map[string]int{"1": 1, "3": 1},
					Count:  2,
					Sum:    4,
				},
			},
		},
		{
			name:  "zero has no factors",
			input: "0",
			expected: Report{
				Raw:          "0",
				Value:        0,
				IsInteger:    true,
				Sign:         SignZero,
				Parity:       ParityEven,
				Factors:      nil,
				PrimeFactors: []uint64{},
				Abundance:    AbundanceNA,
				Digits: DigitStats{
					Digits: "0",
					Counts: map[string]int{"0": 1},
					Count:  1,
					Sum:    0,
				},
			},
		},
		{
			name:  "one",
			input: "1",
			expected: Report{
				Raw:          "1",
				Value:        1,
				IsInteger:    true,
				Sign:         SignPositive,
				Parity:       ParityOdd,
				Factors:      []uint64{1},
				PrimeFactors: []uint64{},
				Abundance:    AbundanceNA,
				Digits: DigitStats{
					Digits: "1",
					Counts: map[string]int{"1": 1},
					Count:  1,
					Sum:    1,
				},
			},
		},
		{
			name:  "float",
			input: " 3.5 ",
			expected: Report{
				Raw:          "3.5",
				Value:        3.5,
				IsInteger:    false,
				Sign:         SignPositive,
				Parity:       ParityNA,
				Factors:      nil,
				PrimeFactors: nil,
				Abundance:    AbundanceNA,
				Digits: DigitStats{
					Digits: "35",
					Counts: map[string]int{"3": 1, "5": 1},
					Count:  2,
					Sum:    8,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := analyzer.Analyze(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, report)
		})
	}
}

func TestAnalyzer_AnalyzeBeyondExactRange(t *testing.T) {
	report, err := NewAnalyzer(0).Analyze("1e21")

	require.NoError(t, err)
	assert.True(t, report.IsInteger)
	assert.Equal(t, ParityEven, report.Parity)
	assert.False(t, report.IsPrime)
	assert.Nil(t, report.Factors)
	assert.Nil(t, report.PrimeFactors)
	assert.Equal(t, AbundanceNA, report.Abundance)
	assert.Equal(t, "121", report.Digits.Digits)
	assert.Equal(t, 4, report.Digits.Sum)
}

func TestAnalyzer_MaxMagnitudeBoundsDivisorWork(t *testing.T) {
	analyzer := NewAnalyzer(100)

	small, err := analyzer.Analyze("100")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 4, 5, 10, 20, 25, 50, 100}, small.Factors)

	large, err := analyzer.Analyze("101")
	require.NoError(t, err)
	assert.True(t, large.IsInteger)
	assert.False(t, large.IsPrime)
	assert.Nil(t, large.Factors)
}

func TestAnalyzer_AnalyzeErrors(t *testing.T) {
	analyzer := NewAnalyzer(0)

	tests := []struct {
		name  string
		input string
		kind  error
	}{
		{"empty", "", ErrEmptyInput},
		{"whitespace", " \t\n", ErrEmptyInput},
		{"letters", "abc", ErrInvalidNumber},
		{"trailing garbage", "12abc", ErrInvalidNumber},
		{"infinity", "Infinity", ErrInvalidNumber},
		{"overflow", "1e400", ErrInvalidNumber},
		{"nan", "NaN", ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzer.Analyze(tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var inErr *InputError
			require.ErrorAs(t, err, &inErr)
			assert.Empty(t, inErr.Operand)
		})
	}
}

func TestAnalyzer_AnalyzeFloat(t *testing.T) {
	analyzer := NewAnalyzer(0)

	report, err := analyzer.AnalyzeFloat(28)
	require.NoError(t, err)
	assert.Equal(t, "28", report.Raw)
	assert.Equal(t, AbundancePerfect, report.Abundance)
}

func TestReport_JSON(t *testing.T) {
	report, err := NewAnalyzer(0).Analyze("2.5")
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2.5", decoded["raw"])
	assert.Equal(t, false, decoded["is_integer"])
	assert.Equal(t, "N/A", decoded["parity"])
	assert.Nil(t, decoded["factors"])
	assert.Nil(t, decoded["prime_factors"])
}
