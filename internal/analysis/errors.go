package analysis

import (
	"errors"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

var (
	// ErrEmptyInput is reported for blank or missing text.
	ErrEmptyInput = errors.New("no input")
	// ErrInvalidNumber is reported for text that does not coerce to a finite number.
	ErrInvalidNumber = errors.New("invalid number")
)

// InputError is the only failure the engine produces. errors.Is matches it
// against ErrEmptyInput or ErrInvalidNumber.
type InputError struct {
	*errbuilder.ErrBuilder
	Kind    error  `json:"-"`
	Input   string `json:"input"`
	Operand string `json:"operand,omitempty"`
}

func newInputError(kind error, msg, input string) *InputError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg).
		WithCause(kind)

	if input != "" {
		errorMap := errbuilder.ErrorMap{}
		errorMap.Set("input", errors.New(input))
		builder = builder.WithDetails(errbuilder.NewErrDetails(errorMap))
	}

	return &InputError{ErrBuilder: builder, Kind: kind, Input: input}
}

func emptyInput() *InputError {
	return newInputError(ErrEmptyInput, "No input", "")
}

func invalidNumber(input string) *InputError {
	return newInputError(ErrInvalidNumber, "Invalid number", input)
}

func (e *InputError) Error() string {
	if e.Operand != "" {
		return e.Operand + " number: " + e.ErrBuilder.Msg
	}
	return e.ErrBuilder.Msg
}

// Message is the user-facing text without operand decoration.
func (e *InputError) Message() string {
	return e.ErrBuilder.Msg
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

// withOperand tags a copy of err with the comparison side that failed.
func withOperand(err error, operand string) error {
	var inErr *InputError
	if !errors.As(err, &inErr) {
		return err
	}
	tagged := *inErr
	tagged.Operand = operand
	return &tagged
}
