package upstream

import "fmt"

// Kind classifies why a provider call failed. Handlers collapse every kind
// into one generic user-facing message; the kind survives in server logs.
type Kind int

const (
	// KindNetwork covers transport failures: DNS, refused, timeout.
	KindNetwork Kind = iota
	// KindStatus covers non-2xx responses from the provider.
	KindStatus
	// KindDecode covers payloads that are not the JSON we expect.
	KindDecode
	// KindMissingField covers well-formed payloads lacking a required field,
	// e.g. a weather response with an empty weather array.
	KindMissingField
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindMissingField:
		return "missing_field"
	default:
		return "unknown"
	}
}

// Error is a provider failure tagged with its kind and the operation that
// produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// missingField builds a field-absence error for an operation.
func missingField(op, field string) *Error {
	return &Error{Kind: KindMissingField, Op: op, Err: fmt.Errorf("expected field %s is absent", field)}
}
