package card

// Layout is one of the two fixed section orderings.
type Layout int

const (
	// ThreeSection renders echo, clarification and suggestion.
	ThreeSection Layout = iota
	// FiveStep renders mirror/restate, breakdown, explanation, suggestions and summary.
	FiveStep
)

func (l Layout) String() string {
	switch l {
	case ThreeSection:
		return "three-section"
	case FiveStep:
		return "five-step"
	default:
		return "unknown"
	}
}

// SelectLayout picks the layout for c. An explicit LayoutOverride always
// wins; otherwise any non-blank five-step field selects FiveStep, and
// everything else renders as ThreeSection.
func SelectLayout(c Content) Layout {
	if c.LayoutOverride != nil {
		if *c.LayoutOverride {
			return ThreeSection
		}
		return FiveStep
	}
	if c.hasStepContent() {
		return FiveStep
	}
	return ThreeSection
}
