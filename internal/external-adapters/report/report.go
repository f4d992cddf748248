// Package report renders verification reports for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ochairo/prodverify/internal/domain/entities"
)

// Format selects a report rendering
type Format string

const (
	// FormatText is the line-oriented summary
	FormatText Format = "text"
	// FormatJSON is a machine-readable document
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported report format %q (want text or json)", s)
	}
}

// jsonReport is the JSON document layout
type jsonReport struct {
	Result  string     `json:"result"`
	Summary jsonCounts `json:"summary"`
	Valid   []string   `json:"valid"`
	Invalid []string   `json:"invalid"`
	Ignored []string   `json:"ignored"`
}

type jsonCounts struct {
	Total                int `json:"total"`
	Valid                int `json:"valid"`
	Invalid              int `json:"invalid"`
	Ignored              int `json:"ignored"`
	DirectoriesScanned   int `json:"directories_scanned"`
	DistributionsScanned int `json:"distributions_scanned"`
}

// Write renders r to w in the requested format
func Write(w io.Writer, r *entities.VerificationReport, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return WriteText(w, r)
	}
}

// WriteText renders the summary counts. The invalid listing is carried by
// the ValidationFailure error so it is printed exactly once.
func WriteText(w io.Writer, r *entities.VerificationReport) error {
	_, err := fmt.Fprintf(w, "Validation results:\n  Valid artifacts: %d\n  Invalid artifacts: %d\n  Ignored artifacts: %d\n",
		r.ValidCount, r.InvalidCount, r.IgnoredCount)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteJSON renders the report as an indented JSON document
func WriteJSON(w io.Writer, r *entities.VerificationReport) error {
	doc := jsonReport{
		Result: r.Result(),
		Summary: jsonCounts{
			Total:                r.Total,
			Valid:                r.ValidCount,
			Invalid:              r.InvalidCount,
			Ignored:              r.IgnoredCount,
			DirectoriesScanned:   r.DirectoriesScanned,
			DistributionsScanned: r.DistributionsScanned,
		},
		Valid:   identityStrings(r.Valid),
		Invalid: identityStrings(r.Invalid),
		Ignored: identityStrings(r.Ignored),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func identityStrings(ids []entities.ArtifactIdentity) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
