package entities

// Classification is the outcome of checking one artifact identity
type Classification int

const (
	// Valid means the terminal file name carries a productization marker
	Valid Classification = iota
	// Invalid means no marker was found and no ignore pattern matched
	Invalid
	// Ignored means an ignore pattern matched; validity was not checked
	Ignored
)

func (c Classification) String() string {
	switch c {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Event is a diagnostic produced while classifying an identity.
// Classification itself never logs; callers decide whether to emit events.
type Event struct {
	Message string
	Fields  map[string]string
}

// Decision is the classification of a single identity plus its diagnostics
type Decision struct {
	Identity       ArtifactIdentity
	Classification Classification
	MatchedPattern string // Ignore pattern that matched (Ignored only)
	Events         []Event
}

// Classified partitions a set of identities into three disjoint sorted lists
type Classified struct {
	Valid   []ArtifactIdentity
	Invalid []ArtifactIdentity
	Ignored []ArtifactIdentity
	Events  []Event
}

// Total returns the number of classified identities
func (c *Classified) Total() int {
	return len(c.Valid) + len(c.Invalid) + len(c.Ignored)
}
