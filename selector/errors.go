package selector

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. The concrete errors returned by the
// builder wrap these and carry the offending kinds.
var (
	// ErrOrder is reported when a fragment arrives after a higher-rank one.
	ErrOrder = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrNonRepetitive is reported when a singleton kind occurs twice.
	ErrNonRepetitive = errors.New("element, id and pseudo-element should not occur more than one time inside the selector")
)

// OrderError reports a fragment appended after a fragment of higher rank.
type OrderError struct {
	Kind  Kind // kind being appended
	After Kind // highest-rank kind already present
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("cannot add %s after %s: %s", e.Kind, e.After, ErrOrder)
}

func (e *OrderError) Unwrap() error { return ErrOrder }

// NonRepetitiveError reports a second occurrence of a singleton kind.
type NonRepetitiveError struct {
	Kind Kind // repeated kind
}

func (e *NonRepetitiveError) Error() string {
	return fmt.Sprintf("%s already present: %s", e.Kind, ErrNonRepetitive)
}

func (e *NonRepetitiveError) Unwrap() error { return ErrNonRepetitive }
