// Package report turns analysis results into the labelled lines and titled
// sections shared by the terminal and web front ends.
package report

import (
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/number-o-meter/internal/analysis"
)

// Line labels, in rendering order.
const (
	LabelInput        = "Input"
	LabelNumber       = "Number"
	LabelType         = "Type"
	LabelSign         = "Sign"
	LabelParity       = "Parity"
	LabelPrime        = "Prime"
	LabelFactors      = "Factors"
	LabelPrimeFactors = "Prime factors"
	LabelDivisorClass = "Divisor classification"
	LabelDigitCount   = "Digit count (excluding decimal point)"
	LabelDigitSum     = "Digit sum"
)

// Section titles.
const (
	TitleNumber     = "Number"
	TitleComparison = "Comparison"
	TitleArithmetic = "Arithmetic"
	TitleRelations  = "Integer relations"
	TitleFirst      = "First Number"
	TitleSecond     = "Second Number"
	TitleError      = "Error"
)

// Mode selects the single-number or the two-number layout.
type Mode string

const (
	ModeSingle  Mode = "single"
	ModeCompare Mode = "compare"
)

// ParseMode falls back to ModeSingle for anything unrecognized.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeCompare {
		return ModeCompare
	}
	return ModeSingle
}

// Line is one "Label: value" pair.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (l Line) String() string {
	return l.Label + ": " + l.Value
}

// Section is a titled block of text. Individual marks a per-number block.
type Section struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Individual bool   `json:"individual"`
}

// Lines renders a single-number report. The Prime line only appears for
// integers.
func Lines(r analysis.Report) []Line {
	lines := []Line{
		{LabelInput, r.Raw},
		{LabelNumber, analysis.FormatNumber(r.Value)},
		{LabelType, typeName(r.IsInteger)},
		{LabelSign, string(r.Sign)},
		{LabelParity, string(r.Parity)},
	}
	if r.IsInteger {
		lines = append(lines, Line{LabelPrime, yesNo(r.IsPrime, "yes", "no")})
	}
	lines = append(lines,
		Line{LabelFactors, humanList(r.Factors)},
		Line{LabelPrimeFactors, humanList(r.PrimeFactors)},
		Line{LabelDivisorClass, string(r.Abundance)},
		Line{LabelDigitCount, strconv.Itoa(r.Digits.Count)},
		Line{LabelDigitSum, strconv.Itoa(r.Digits.Sum)},
	)
	return lines
}

// Text joins lines with newlines.
func Text(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}

// SingleSections is the single mode layout: one individual section.
func SingleSections(r analysis.Report) []Section {
	return []Section{{Title: TitleNumber, Body: Text(Lines(r)), Individual: true}}
}

// TerminalSections is the single-number terminal layout: the input and its
// value, then the derived properties. Both blocks are untitled.
func TerminalSections(r analysis.Report) []Section {
	lines := Lines(r)
	return []Section{
		{Body: Text(lines[:2])},
		{Body: Text(lines[2:])},
	}
}

// ComparisonLines renders the integer family of a comparison.
func ComparisonLines(c analysis.Comparison) []Line {
	if c.Integers == nil {
		return []Line{
			{"GCD (integers)", "N/A"},
			{"LCM (integers)", "N/A"},
			{"Common Divisors (of GCD)", "N/A"},
			{"Relatively Prime", "N/A"},
			{"Shared Prime Factors", "N/A"},
		}
	}
	ints := c.Integers
	return []Line{
		{"GCD (integers)", strconv.FormatUint(ints.GCD, 10)},
		{"LCM (integers)", ints.LCM.String()},
		{"Common Divisors (of GCD)", dashList(ints.CommonDivisors)},
		{"Relatively Prime", yesNo(ints.RelativelyPrime, "Yes", "No")},
		{"Shared Prime Factors", dashList(ints.SharedPrimeFactors)},
	}
}

// ArithmeticLines renders the real-valued family of a comparison.
func ArithmeticLines(c analysis.Comparison) []Line {
	return []Line{
		{"Sum", c.Sum.String()},
		{"Product", c.Product.String()},
		{"Difference (n1 - n2)", c.Difference.String()},
		{"Absolute Difference", c.AbsDifference.String()},
		{"Ratio (n1 / n2)", c.Ratio.String()},
		{"Which is larger", largerText(c.Larger)},
		{"Average", c.Average.String()},
	}
}

// RelationText describes the multiple relation in one line.
func RelationText(c analysis.Comparison) string {
	if c.Integers == nil {
		return "N/A"
	}
	switch c.Integers.Multiple {
	case analysis.FirstMultipleOfSecond:
		return "First is a multiple of Second"
	case analysis.SecondMultipleOfFirst:
		return "Second is a multiple of First"
	default:
		return "No direct integer multiple"
	}
}

// CompareSections is the compare mode layout: the pairwise sections first,
// then each number on its own.
func CompareSections(c analysis.Comparison) []Section {
	return []Section{
		{Title: TitleComparison, Body: Text(ComparisonLines(c))},
		{Title: TitleArithmetic, Body: Text(ArithmeticLines(c))},
		{Title: TitleRelations, Body: RelationText(c)},
		{Title: TitleFirst, Body: Text(Lines(c.First)), Individual: true},
		{Title: TitleSecond, Body: Text(Lines(c.Second)), Individual: true},
	}
}

// EmptySections renders the labels of a mode with blank values.
func EmptySections(mode Mode) []Section {
	individual := blankText(
		LabelInput, LabelNumber, LabelType, LabelSign, LabelParity, LabelPrime,
		LabelFactors, LabelPrimeFactors, LabelDivisorClass, LabelDigitCount, LabelDigitSum,
	)
	if mode != ModeCompare {
		return []Section{{Title: TitleNumber, Body: individual, Individual: true}}
	}
	return []Section{
		{Title: TitleComparison, Body: blankText(
			"GCD (integers)", "LCM (integers)", "Common Divisors (of GCD)",
			"Relatively Prime", "Shared Prime Factors",
		)},
		{Title: TitleArithmetic, Body: blankText(
			"Sum", "Product", "Difference (n1 - n2)", "Absolute Difference",
			"Ratio (n1 / n2)", "Which is larger", "Average",
		)},
		{Title: TitleRelations, Body: "No direct integer multiple"},
		{Title: TitleFirst, Body: individual, Individual: true},
		{Title: TitleSecond, Body: individual, Individual: true},
	}
}

// ErrorSection wraps a user-facing message.
func ErrorSection(message string) Section {
	return Section{Title: TitleError, Body: message}
}

func blankText(labels ...string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = label + ": "
	}
	return strings.Join(parts, "\n")
}

func typeName(isInteger bool) string {
	if isInteger {
		return "Integer"
	}
	return "Float"
}

func yesNo(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

func largerText(l analysis.Larger) string {
	switch l {
	case analysis.LargerFirst:
		return "First (n1) is larger"
	case analysis.LargerSecond:
		return "Second (n2) is larger"
	default:
		return "Equal"
	}
}

// humanList renders nil as N/A and an empty list as none.
func humanList(xs []uint64) string {
	if xs == nil {
		return "N/A"
	}
	if len(xs) == 0 {
		return "none"
	}
	return joinUints(xs)
}

func dashList(xs []uint64) string {
	if len(xs) == 0 {
		return "-"
	}
	return joinUints(xs)
}

func joinUints(xs []uint64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatUint(x, 10)
	}
	return strings.Join(parts, ", ")
}
