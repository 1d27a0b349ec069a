package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ZanzyTHEbar/number-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/number-o-meter/internal/report"
)

const usageText = `Usage: numstat <number>
Or: numstat compare <first> <second>`

// cli carries the flags and collaborators shared by every subcommand
type cli struct {
	stdout io.Writer
	stderr io.Writer

	verbose      bool
	jsonOutput   bool
	plain        bool
	maxMagnitude uint64

	logger   *zap.Logger
	analyzer *analysis.Analyzer
}

// execute runs the CLI on args the way the binary does
func execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(negativeNumbersAsArgs(cmd, args))
	return cmd.Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "numstat [number]",
		Short: "Numeric properties of a number",
		Long: `numstat reports the type, sign, parity, primality, factors, prime
factorization, divisor classification and digit statistics of a number.

Integers may be written in decimal, exponent or 0x/0o/0b form.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			c.analyzer = analysis.NewAnalyzer(c.maxMagnitude)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := fmt.Fprintln(c.stdout, usageText)
				return err
			}
			return c.runAnalyze(args[0])
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Print the report as JSON")
	rootCmd.PersistentFlags().BoolVar(&c.plain, "plain", false, "Disable colors")
	rootCmd.PersistentFlags().Uint64Var(&c.maxMagnitude, "max-magnitude", analysis.MaxExactInteger,
		"Largest magnitude that is factored")

	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "analyze <number>",
			Short: "Report the properties of one number",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runAnalyze(args[0])
			},
		},
		&cobra.Command{
			Use:   "compare <first> <second>",
			Short: "Relate two numbers: GCD, LCM, shared factors and arithmetic",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runCompare(args[0], args[1])
			},
		},
	)

	return rootCmd
}

func (c *cli) runAnalyze(raw string) error {
	c.logger.Debug("Analyzing number", zap.String("input", raw))
	start := time.Now()

	r, err := c.analyzer.Analyze(raw)
	if err != nil {
		c.logger.Debug("Analysis rejected input", zap.String("input", raw), zap.Error(err))
		return c.renderError(err)
	}

	c.logger.Debug("Analysis completed",
		zap.Bool("is_integer", r.IsInteger),
		zap.Bool("is_prime", r.IsPrime),
		zap.Int("factors", len(r.Factors)),
		zap.Duration("duration", time.Since(start)))

	if c.jsonOutput {
		return c.writeJSON(r)
	}
	return c.renderSections(report.TerminalSections(r))
}

func (c *cli) runCompare(first, second string) error {
	c.logger.Debug("Comparing numbers", zap.String("first", first), zap.String("second", second))
	start := time.Now()

	cmp, err := c.analyzer.Compare(first, second)
	if err != nil {
		c.logger.Debug("Comparison rejected input", zap.Error(err))
		return c.renderError(err)
	}

	c.logger.Debug("Comparison completed",
		zap.Bool("integer_relations", cmp.Integers != nil),
		zap.Duration("duration", time.Since(start)))

	if c.jsonOutput {
		return c.writeJSON(cmp)
	}
	return c.renderSections(report.CompareSections(cmp))
}

func (c *cli) terminal(w io.Writer) *report.Terminal {
	if c.plain {
		return report.NewTerminal(w, report.PlainStyles())
	}
	return report.NewTerminal(w, report.ColorStyles())
}

func (c *cli) renderSections(sections []report.Section) error {
	term := c.terminal(c.stdout)
	if err := term.Render(sections); err != nil {
		return err
	}
	return term.Footer(fmt.Sprintf("Platform: %s %s", runtime.GOOS, runtime.GOARCH))
}

// renderError prints the message on stderr and returns a bare error so the
// process exits non-zero without printing it twice
func (c *cli) renderError(err error) error {
	if renderErr := c.terminal(c.stderr).Render([]report.Section{report.ErrorSection("Error: " + err.Error())}); renderErr != nil {
		return renderErr
	}
	return errReported
}

func (c *cli) writeJSON(v interface{}) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// negativeNumbersAsArgs keeps "-5" from being read as a shorthand flag. When
// any argument is a negative number, flags move ahead of a "--" terminator and
// everything else follows it in order. A leading subcommand name stays first.
func negativeNumbersAsArgs(root *cobra.Command, args []string) []string {
	if !hasNegativeNumber(args) {
		return args
	}

	var flags, positional []string
loop:
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			break loop
		case isNegativeNumber(arg) || !strings.HasPrefix(arg, "-"):
			positional = append(positional, arg)
		default:
			flags = append(flags, arg)
			if takesValue(root, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}

	out := make([]string, 0, len(args)+1)
	if len(positional) > 0 && isSubcommand(root, positional[0]) {
		out = append(out, positional[0])
		positional = positional[1:]
	}
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

func hasNegativeNumber(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if isNegativeNumber(arg) {
			return true
		}
	}
	return false
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := analysis.Parse(arg)
	return err == nil
}

// takesValue reports whether arg is a persistent flag whose value is the
// next argument
func takesValue(root *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	flags := root.PersistentFlags()
	if name := strings.TrimPrefix(arg, "--"); name != arg {
		f := flags.Lookup(name)
		return f != nil && f.NoOptDefVal == ""
	}
	if len(arg) == 2 {
		f := flags.ShorthandLookup(arg[1:])
		return f != nil && f.NoOptDefVal == ""
	}
	return false
}

func isSubcommand(root *cobra.Command, name string) bool {
	for _, sub := range root.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return true
		}
	}
	return false
}
