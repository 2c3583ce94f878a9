package args

import (
	"errors"
	"strings"
)

var (
	ErrMissingRequired = errors.New("required arguments missing")
	ErrValueRequired   = errors.New("value required but not supplied")
	ErrUnrecognized    = errors.New("unrecognized argument")
	ErrDuplicateSwitch = errors.New("duplicate switch")
	ErrDuplicateName   = errors.New("duplicate parameter name")
	ErrInvalidSpec     = errors.New("invalid parameter spec")
	ErrApply           = errors.New("failed to apply value")

	ErrHelp    = errors.New("help requested")    // ErrHelp is returned from [Parser.Parse] when the help switch was given.
	ErrVersion = errors.New("version requested") // ErrVersion is returned from [Parser.Parse] when the version switch was given.
)

// MissingRequiredError lists the required parameters that didn't receive a value.
// Parameters are listed by value label if they have one, or by name, in declaration order.
type MissingRequiredError struct {
	Missing []string
}

func (e *MissingRequiredError) Error() string {
	if len(e.Missing) == 0 {
		return ErrMissingRequired.Error()
	}
	return ErrMissingRequired.Error() + ": " + strings.Join(e.Missing, ", ")
}

func (e *MissingRequiredError) Is(err error) bool {
	return err == ErrMissingRequired
}

// ValueRequiredError is reported when a valued switch has no inline value, no following value token, and no default.
type ValueRequiredError struct {
	Switch string
}

func (e *ValueRequiredError) Error() string {
	return ErrValueRequired.Error() + " for switch '" + e.Switch + "'"
}

func (e *ValueRequiredError) Is(err error) bool {
	return err == ErrValueRequired
}

// UnrecognizedError is reported for a token that matches no declared switch, or a positional token when no positional parameters are declared.
// Token is the argument as it was given, or the single switch left over after splitting a bundle.
type UnrecognizedError struct {
	Token string
}

func (e *UnrecognizedError) Error() string {
	return ErrUnrecognized.Error() + ": '" + e.Token + "'"
}

func (e *UnrecognizedError) Is(err error) bool {
	return err == ErrUnrecognized
}

// ParseError is everything that went wrong in a single [Parser.Parse] pass.
// Token problems are kept in the order they were found, and missing required parameters are always reported last, as one message.
// Use [errors.Is] and [errors.As] to look for a specific kind.
type ParseError struct {
	problems []error
	missing  *MissingRequiredError
}

func (e *ParseError) add(err error) {
	if err != nil {
		e.problems = append(e.problems, err)
	}
}

// require records the labels of required parameters that never got a value.
func (e *ParseError) require(missing []string) {
	if len(missing) == 0 {
		return
	}
	e.missing = &MissingRequiredError{Missing: missing}
}

// result returns nil if nothing went wrong, since an empty ParseError is still a non-nil error.
func (e *ParseError) result() error {
	if len(e.problems) > 0 || e.missing != nil {
		return e
	}
	return nil
}

// Errors returns each problem as its own error, with the missing required parameters last.
func (e *ParseError) Errors() []error {
	errs := make([]error, 0, len(e.problems)+1)
	errs = append(errs, e.problems...)
	if e.missing != nil {
		errs = append(errs, e.missing)
	}
	return errs
}

// Unrecognized returns the tokens that didn't match any declared parameter.
func (e *ParseError) Unrecognized() []string {
	var tokens []string
	for _, err := range e.problems {
		var unrecognized *UnrecognizedError
		if errors.As(err, &unrecognized) {
			tokens = append(tokens, unrecognized.Token)
		}
	}
	return tokens
}

// Missing returns the labels of required parameters that didn't receive a value.
func (e *ParseError) Missing() []string {
	if e.missing == nil {
		return nil
	}
	return e.missing.Missing
}

// Error renders one line for each problem.
func (e *ParseError) Error() string {
	var buf strings.Builder
	for i, err := range e.Errors() {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

func (e *ParseError) Unwrap() []error {
	return e.Errors()
}
