package report

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/number-o-meter/internal/analysis"
)

func analyze(t *testing.T, raw string) analysis.Report {
	t.Helper()
	r, err := analysis.NewAnalyzer(0).Analyze(raw)
	require.NoError(t, err)
	return r
}

func compare(t *testing.T, a, b string) analysis.Comparison {
	t.Helper()
	c, err := analysis.NewAnalyzer(0).Compare(a, b)
	require.NoError(t, err)
	return c
}

func TestLines_Integer(t *testing.T) {
	got := Text(Lines(analyze(t, "12")))
	want := strings.Join([]string{
		"Input: 12",
		"Number: 12",
		"Type: Integer",
		"Sign: positive",
		"Parity: even",
		"Prime: no",
		"Factors: 1, 2, 3, 4, 6, 12",
		"Prime factors: 2, 2, 3",
		"Divisor classification: abundant",
		"Digit count (excluding decimal point): 2",
		"Digit sum: 3",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines(12) mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_Float(t *testing.T) {
	got := Text(Lines(analyze(t, "-3.5")))
	want := strings.Join([]string{
		"Input: -3.5",
		"Number: -3.5",
		"Type: Float",
		"Sign: negative",
		"Parity: N/A",
		"Factors: N/A",
		"Prime factors: N/A",
		"Divisor classification: N/A",
		"Digit count (excluding decimal point): 2",
		"Digit sum: 8",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines(-3.5) mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_EdgeIntegers(t *testing.T) {
	zero := Lines(analyze(t, "0"))
	assert.Contains(t, zero, Line{LabelPrime, "no"})
	assert.Contains(t, zero, Line{LabelFactors, "N/A"})
	assert.Contains(t, zero, Line{LabelPrimeFactors, "none"})

	one := Lines(analyze(t, "1"))
	assert.Contains(t, one, Line{LabelFactors, "1"})
	assert.Contains(t, one, Line{LabelPrimeFactors, "none"})
	assert.Contains(t, one, Line{LabelDivisorClass, "N/A"})

	prime := Lines(analyze(t, "13"))
	assert.Contains(t, prime, Line{LabelPrime, "yes"})
	assert.Contains(t, prime, Line{LabelDivisorClass, "deficient"})
}

func TestCompareSections(t *testing.T) {
	sections := CompareSections(compare(t, "12", "18"))
	require.Len(t, sections, 5)

	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{TitleComparison, TitleArithmetic, TitleRelations, TitleFirst, TitleSecond}, titles)

	wantComparison := strings.Join([]string{
		"GCD (integers): 6",
		"LCM (integers): 36",
		"Common Divisors (of GCD): 1, 2, 3, 6",
		"Relatively Prime: No",
		"Shared Prime Factors: 2, 3",
	}, "\n")
	if diff := cmp.Diff(wantComparison, sections[0].Body); diff != "" {
		t.Errorf("comparison mismatch (-want +got):\n%s", diff)
	}

	wantArithmetic := strings.Join([]string{
		"Sum: 30",
		"Product: 216",
		"Difference (n1 - n2): -6",
		"Absolute Difference: 6",
		"Ratio (n1 / n2): 0.6666666666666666",
		"Which is larger: Second (n2) is larger",
		"Average: 15",
	}, "\n")
	if diff := cmp.Diff(wantArithmetic, sections[1].Body); diff != "" {
		t.Errorf("arithmetic mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "No direct integer multiple", sections[2].Body)
	assert.False(t, sections[0].Individual)
	assert.True(t, sections[3].Individual)
	assert.True(t, sections[4].Individual)
	assert.Contains(t, sections[3].Body, "Input: 12")
	assert.Contains(t, sections[4].Body, "Input: 18")
}

func TestCompareSections_Relations(t *testing.T) {
	assert.Equal(t, "First is a multiple of Second", CompareSections(compare(t, "12", "4"))[2].Body)
	assert.Equal(t, "Second is a multiple of First", CompareSections(compare(t, "4", "12"))[2].Body)
}

func TestCompareSections_CoprimeAndZeroDivisor(t *testing.T) {
	coprime := ComparisonLines(compare(t, "9", "10"))
	assert.Contains(t, coprime, Line{"Relatively Prime", "Yes"})
	assert.Contains(t, coprime, Line{"Shared Prime Factors", "-"})

	zero := ArithmeticLines(compare(t, "5", "0"))
	assert.Contains(t, zero, Line{"Ratio (n1 / n2)", analysis.InfinitySymbol})
	assert.Contains(t, zero, Line{"Which is larger", "First (n1) is larger"})

	equal := ArithmeticLines(compare(t, "3", "3.0"))
	assert.Contains(t, equal, Line{"Which is larger", "Equal"})
}

func TestCompareSections_OutsideExactRange(t *testing.T) {
	c := compare(t, "1e300", "2")
	for _, line := range ComparisonLines(c) {
		assert.Equal(t, "N/A", line.Value, line.Label)
	}
	assert.Equal(t, "N/A", RelationText(c))
}

func TestEmptySections(t *testing.T) {
	single := EmptySections(ModeSingle)
	require.Len(t, single, 1)
	assert.True(t, single[0].Individual)
	assert.True(t, strings.HasPrefix(single[0].Body, "Input: \nNumber: "))

	compareMode := EmptySections(ModeCompare)
	require.Len(t, compareMode, 5)
	assert.Contains(t, compareMode[0].Body, "GCD (integers): ")
	assert.Contains(t, compareMode[1].Body, "Ratio (n1 / n2): ")
	assert.Equal(t, single[0].Body, compareMode[3].Body)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeCompare, ParseMode("compare"))
	assert.Equal(t, ModeCompare, ParseMode(" Compare "))
	assert.Equal(t, ModeSingle, ParseMode("single"))
	assert.Equal(t, ModeSingle, ParseMode(""))
	assert.Equal(t, ModeSingle, ParseMode("bogus"))
}

func TestErrorSection(t *testing.T) {
	s := ErrorSection("Invalid number")
	assert.Equal(t, TitleError, s.Title)
	assert.Equal(t, "Invalid number", s.Body)
	assert.False(t, s.Individual)
}

func TestTerminalSections(t *testing.T) {
	sections := TerminalSections(analyze(t, "12"))
	require.Len(t, sections, 2)
	assert.Empty(t, sections[0].Title)
	assert.Empty(t, sections[1].Title)
	assert.Equal(t, "Input: 12\nNumber: 12", sections[0].Body)
	assert.True(t, strings.HasPrefix(sections[1].Body, "Type: Integer\nSign: positive"))
	assert.True(t, strings.HasSuffix(sections[1].Body, "Digit sum: 3"))
}
