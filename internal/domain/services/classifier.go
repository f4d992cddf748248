// Package services implements domain business logic and use cases.
package services

import (
	"strings"

	"github.com/ochairo/prodverify/internal/domain/entities"
	"github.com/ochairo/prodverify/internal/domain/interfaces/gateways"
	"github.com/ochairo/prodverify/internal/domain/interfaces/services"
)

// Productization markers; either one anywhere in the terminal file name
// makes an artifact valid
var productMarkers = []string{"-redhat-", ".redhat-"}

// classifierService implements ClassifierService with pure business logic
type classifierService struct {
	matcher gateways.GlobMatcher
}

// NewClassifierService creates a new classifier with dependency injection
func NewClassifierService(matcher gateways.GlobMatcher) services.ClassifierService {
	return &classifierService{matcher: matcher}
}

// Classify applies the ignore rule, then the validity rule.
// Pure business logic - diagnostics are returned as events, never logged.
func (s *classifierService) Classify(id entities.ArtifactIdentity, cfg entities.Configuration) entities.Decision {
	full := id.String()
	decision := entities.Decision{Identity: id}

	// Step 1: ignore patterns are matched against the full identity
	for _, pattern := range cfg.IgnoreFiles {
		if s.matcher != nil && s.matcher.Match(pattern, full) {
			decision.Classification = entities.Ignored
			decision.MatchedPattern = pattern
			decision.Events = append(decision.Events,
				event("Artifact matches ignore pattern '"+pattern+"': "+full, "pattern", pattern),
				event("Ignoring file: "+full),
			)
			return decision
		}
	}

	// Step 2: validity depends on the terminal file name only
	if s.IsProductized(id.TerminalFileName()) {
		decision.Classification = entities.Valid
		decision.Events = append(decision.Events, event("Valid file: "+full))
		return decision
	}

	decision.Classification = entities.Invalid
	decision.Events = append(decision.Events,
		event("Invalid file (missing -redhat- or .redhat-): "+full, "file", id.TerminalFileName()),
	)
	return decision
}

// ClassifyAll partitions a set into valid, invalid and ignored identities.
// The set is walked in sorted order so events and lists are deterministic.
func (s *classifierService) ClassifyAll(set *entities.IdentitySet, cfg entities.Configuration) *entities.Classified {
	result := &entities.Classified{
		Valid:   make([]entities.ArtifactIdentity, 0),
		Invalid: make([]entities.ArtifactIdentity, 0),
		Ignored: make([]entities.ArtifactIdentity, 0),
	}

	for _, id := range set.Sorted() {
		decision := s.Classify(id, cfg)
		result.Events = append(result.Events, decision.Events...)

		switch decision.Classification {
		case entities.Ignored:
			result.Ignored = append(result.Ignored, id)
		case entities.Invalid:
			result.Invalid = append(result.Invalid, id)
		default:
			result.Valid = append(result.Valid, id)
		}
	}

	return result
}

// IsProductized reports whether fileName contains a productization marker.
// Matching is a case-sensitive substring search with no anchoring.
func (s *classifierService) IsProductized(fileName string) bool {
	for _, marker := range productMarkers {
		if strings.Contains(fileName, marker) {
			return true
		}
	}
	return false
}

func event(msg string, kv ...string) entities.Event {
	e := entities.Event{Message: msg}
	if len(kv) > 1 {
		e.Fields = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			e.Fields[kv[i]] = kv[i+1]
		}
	}
	return e
}
