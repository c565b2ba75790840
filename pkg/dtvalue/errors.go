package dtvalue

import (
	"errors"
	"fmt"
)

// Sentinel errors for the boundary-level error taxonomy. Parsers wrap these
// with fmt.Errorf("%w: ...") where extra context helps a caller without
// needing a type switch for the common cases.
var (
	ErrUnexpectedEndOfInput = errors.New("dtvalue: unexpected end of input")
	ErrInvalidDate          = errors.New("dtvalue: invalid date")
	ErrInvalidTime          = errors.New("dtvalue: invalid time")
	ErrInvalidDateTime      = errors.New("dtvalue: invalid datetime")
	ErrInvalidDateTimeZone  = errors.New("dtvalue: invalid datetime timezone")
)

// FractionDelimiterError reports a missing '.' where a fractional-seconds
// delimiter was required.
type FractionDelimiterError struct {
	Value byte
}

func (e *FractionDelimiterError) Error() string {
	return fmt.Sprintf("dtvalue: expected '.' fraction delimiter, got %q", e.Value)
}

// InvalidNumberLengthError reports a decimal run outside the 1..9 digit
// range the decimal helper accepts.
type InvalidNumberLengthError struct {
	Len int
}

func (e *InvalidNumberLengthError) Error() string {
	return fmt.Sprintf("dtvalue: invalid number length %d", e.Len)
}

// InvalidNumberTokenError reports a non-digit byte where a decimal digit
// was required.
type InvalidNumberTokenError struct {
	Value byte
}

func (e *InvalidNumberTokenError) Error() string {
	return fmt.Sprintf("dtvalue: invalid number token %q", e.Value)
}

// InvalidTimeZoneSignError reports a byte other than '+'/'-' where a
// timezone sign was required.
type InvalidTimeZoneSignError struct {
	Value byte
}

func (e *InvalidTimeZoneSignError) Error() string {
	return fmt.Sprintf("dtvalue: invalid timezone sign %q", e.Value)
}

// Component names used by IncompleteValueError and InvalidComponentError.
const (
	ComponentYear      = "Year"
	ComponentMonth     = "Month"
	ComponentDay       = "Day"
	ComponentHour      = "Hour"
	ComponentMinute    = "Minute"
	ComponentSecond    = "Second"
	ComponentFraction  = "Fraction"
	ComponentUTCOffset = "UTCOffset"
)

// IncompleteValueError reports that a value ended before a named component
// could be read — this is the terminal state of a successful-so-far parse,
// not a malformed token.
type IncompleteValueError struct {
	Component string
}

func (e *IncompleteValueError) Error() string {
	return fmt.Sprintf("dtvalue: incomplete value, missing %s", e.Component)
}

// InvalidComponentError reports a component that was read successfully but
// whose value falls outside its valid range.
type InvalidComponentError struct {
	Component string
	Value     int
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("dtvalue: invalid %s value %d", e.Component, e.Value)
}
