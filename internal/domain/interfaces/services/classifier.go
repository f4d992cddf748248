// Package services defines interfaces for domain service contracts.
package services

import (
	"github.com/ochairo/prodverify/internal/domain/entities"
)

// ClassifierService decides whether artifacts are valid, invalid or ignored.
// Implementations must be free of side effects.
type ClassifierService interface {
	// Classify applies the ignore rule and then the validity rule to one identity
	Classify(id entities.ArtifactIdentity, cfg entities.Configuration) entities.Decision

	// ClassifyAll partitions every identity in set, each list sorted
	ClassifyAll(set *entities.IdentitySet, cfg entities.Configuration) *entities.Classified

	// IsProductized reports whether a terminal file name carries a marker
	IsProductized(fileName string) bool
}
