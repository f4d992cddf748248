package entities

import (
	"fmt"
	"strings"
)

// VerificationReport summarizes a single verification run
type VerificationReport struct {
	ValidCount   int
	InvalidCount int
	IgnoredCount int
	Total        int

	Valid   []ArtifactIdentity
	Invalid []ArtifactIdentity
	Ignored []ArtifactIdentity

	DirectoriesScanned   int
	DistributionsScanned int
}

// NewVerificationReport builds a report from classified results
func NewVerificationReport(c *Classified, directories, distributions int) *VerificationReport {
	return &VerificationReport{
		ValidCount:           len(c.Valid),
		InvalidCount:         len(c.Invalid),
		IgnoredCount:         len(c.Ignored),
		Total:                c.Total(),
		Valid:                c.Valid,
		Invalid:              c.Invalid,
		Ignored:              c.Ignored,
		DirectoriesScanned:   directories,
		DistributionsScanned: distributions,
	}
}

// Passed reports whether no invalid artifacts were found
func (r *VerificationReport) Passed() bool {
	return r.InvalidCount == 0
}

// Result returns "PASS" or "FAIL"
func (r *VerificationReport) Result() string {
	if r.Passed() {
		return "PASS"
	}
	return "FAIL"
}

// SerializeIdentities renders identities one per line with a four-space indent
func SerializeIdentities(ids []ArtifactIdentity) string {
	var sb strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&sb, "    %s\n", id)
	}
	return sb.String()
}
