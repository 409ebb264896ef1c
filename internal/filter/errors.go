package filter

// ErrorKind classifies a filter compilation failure.
type ErrorKind int

const (
	UnterminatedString ErrorKind = iota + 1
	UnexpectedEndOfInput
	UnexpectedToken
	UnknownField
	UnknownOperator
	MissingExpression
	MismatchedLogicalOperator
	InvalidLiteralValue
)

var errorKindNames = map[ErrorKind]string{
	UnterminatedString:        "UnterminatedString",
	UnexpectedEndOfInput:      "UnexpectedEndOfInput",
	UnexpectedToken:           "UnexpectedToken",
	UnknownField:              "UnknownField",
	UnknownOperator:           "UnknownOperator",
	MissingExpression:         "MissingExpression",
	MismatchedLogicalOperator: "MismatchedLogicalOperator",
	InvalidLiteralValue:       "InvalidLiteralValue",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is returned for every invalid filter or projection. All failures are
// input errors; the first one aborts compilation.
type Error struct {
	Kind     ErrorKind
	Message  string
	Expected string   // UnexpectedToken, MismatchedLogicalOperator
	Found    string   // offending token, if any
	Valid    []string // UnknownField, UnknownOperator
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is a *Error of the same kind, so callers can use
// errors.Is(err, &filter.Error{Kind: filter.UnknownField}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func errEndOfInput() *Error {
	return &Error{Kind: UnexpectedEndOfInput, Message: "unexpected end of filter expression"}
}
