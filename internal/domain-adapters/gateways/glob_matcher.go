// Package gateways provides implementations of domain gateway interfaces.
package gateways

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// globMatcher implements GlobMatcher on top of doublestar.
// '*' matches within one '/'-separated segment, '**' spans segments and
// '?' matches a single character.
type globMatcher struct{}

// NewGlobMatcher creates a new doublestar-backed glob matcher
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewGlobMatcher() *globMatcher {
	return &globMatcher{}
}

// Match reports whether candidate matches pattern; bad patterns never match
func (g *globMatcher) Match(pattern, candidate string) bool {
	matched, err := doublestar.Match(pattern, candidate)
	return err == nil && matched
}

// Validate returns an error when pattern is not a valid glob
func (g *globMatcher) Validate(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid ignore pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return nil
}
