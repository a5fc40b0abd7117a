package enrich

import "fmt"

// Policy decides what a failing word does to the rest of the pass.
type Policy int

const (
	// PolicyAbort stops the pass on the first failure; already-enriched
	// entries survive because the caller persists before exiting.
	PolicyAbort Policy = iota
	// PolicySkip logs the failure and continues with the next word.
	PolicySkip
	// PolicyRetry re-attempts the word with a doubling sleep before
	// aborting.
	PolicyRetry
)

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	case "retry":
		return PolicyRetry, nil
	}
	return PolicyAbort, fmt.Errorf("unknown policy %q", s)
}

func (p Policy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyRetry:
		return "retry"
	}
	return "abort"
}
