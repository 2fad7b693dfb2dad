package domain

// UnitOutcome describes how a file unit produced its artifact.
type UnitOutcome string

const (
	// UnitGenerated means the collaborator produced the content.
	UnitGenerated UnitOutcome = "generated"
	// UnitOverridden means an override file supplied the content.
	UnitOverridden UnitOutcome = "overridden"
	// UnitRegenerated means a context file was regenerated.
	UnitRegenerated UnitOutcome = "regenerated"
	// UnitCopied means an ancillary source was carried over.
	UnitCopied UnitOutcome = "copied"
)

// Verb returns the past tense shown next to a finished unit.
func (o UnitOutcome) Verb() string {
	switch o {
	case UnitOverridden:
		return "overridden"
	case UnitRegenerated:
		return "regenerated"
	case UnitCopied:
		return "copied"
	default:
		return "generated"
	}
}
