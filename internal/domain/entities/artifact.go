// Package entities defines core domain models and data structures.
package entities

import (
	"sort"
	"strings"
)

// IdentitySeparator joins the container and entry path of an artifact identity
const IdentitySeparator = "::"

// ArtifactIdentity identifies one discovered file within its container.
// Container is a canonical directory path or a distribution file name;
// EntryPath is the file path relative to that container and keeps whatever
// separator style the source used.
type ArtifactIdentity struct {
	Container string
	EntryPath string

	// bare marks legacy input that carried no separator at all
	bare bool
}

// NewArtifactIdentity creates an identity for an entry inside a container
func NewArtifactIdentity(container, entryPath string) ArtifactIdentity {
	return ArtifactIdentity{Container: container, EntryPath: entryPath}
}

// ParseIdentity parses the "<container>::<entryPath>" form, splitting on the
// first separator. Input without a separator is treated as a bare entry path.
func ParseIdentity(s string) ArtifactIdentity {
	container, entry, found := strings.Cut(s, IdentitySeparator)
	if !found {
		return ArtifactIdentity{EntryPath: s, bare: true}
	}
	return ArtifactIdentity{Container: container, EntryPath: entry}
}

// String renders the identity as "<container>::<entryPath>".
// ParseIdentity(s).String() == s for every input.
func (a ArtifactIdentity) String() string {
	if a.bare {
		return a.EntryPath
	}
	return a.Container + IdentitySeparator + a.EntryPath
}

// TerminalFileName returns the innermost file name of the entry path.
// Both '/' and '\' count as separators, whichever occurs last wins.
// The container never participates.
func (a ArtifactIdentity) TerminalFileName() string {
	idx := strings.LastIndexAny(a.EntryPath, `/\`)
	if idx < 0 {
		return a.EntryPath
	}
	return a.EntryPath[idx+1:]
}

// IdentitySet is a set of artifact identities keyed on their string form.
// Ordering is applied explicitly by Sorted.
type IdentitySet struct {
	items map[string]ArtifactIdentity
}

// NewIdentitySet creates a set holding the given identities
func NewIdentitySet(ids ...ArtifactIdentity) *IdentitySet {
	s := &IdentitySet{items: make(map[string]ArtifactIdentity, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts an identity, reporting whether it was new
func (s *IdentitySet) Add(id ArtifactIdentity) bool {
	if s.items == nil {
		s.items = make(map[string]ArtifactIdentity)
	}
	key := id.String()
	if _, ok := s.items[key]; ok {
		return false
	}
	s.items[key] = id
	return true
}

// AddAll merges another set into this one
func (s *IdentitySet) AddAll(other *IdentitySet) {
	if other == nil {
		return
	}
	for _, id := range other.items {
		s.Add(id)
	}
}

// Contains reports whether the identity is in the set
func (s *IdentitySet) Contains(id ArtifactIdentity) bool {
	_, ok := s.items[id.String()]
	return ok
}

// Len returns the number of identities in the set
func (s *IdentitySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Sorted returns the identities ordered lexicographically by string form
func (s *IdentitySet) Sorted() []ArtifactIdentity {
	if s == nil {
		return nil
	}
	out := make([]ArtifactIdentity, 0, len(s.items))
	for _, id := range s.items {
		out = append(out, id)
	}
	SortIdentities(out)
	return out
}

// SortIdentities sorts identities in place by string form
func SortIdentities(ids []ArtifactIdentity) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
}
