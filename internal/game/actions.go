package game

// Outcome classifies the result of a click on a cell. Invalid actions are
// expected gameplay, reported here and never as errors.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomePickup
	OutcomeDrop
	OutcomeMerge
	OutcomeOutOfRange
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomePickup:
		return "pickup"
	case OutcomeDrop:
		return "drop"
	case OutcomeMerge:
		return "merge"
	case OutcomeOutOfRange:
		return "outOfRange"
	default:
		return "unknown"
	}
}

// ClickResult reports what a click did.
type ClickResult struct {
	Outcome Outcome
	// Value is the token value that moved or was created: the picked-up
	// or dropped value, or the merged result. Zero when nothing moved.
	Value int
}
