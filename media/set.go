package media

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultSeparator joins media in String.
const DefaultSeparator = ", "

// Set is an unordered collection of unique media. Read views are sorted by
// medium name; the order of mutations is not observable.
//
// The zero value is an empty set ready to use. A Set is not safe for
// concurrent mutation.
type Set struct {
	members map[Medium]struct{}
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{members: make(map[Medium]struct{})}
}

// CreateOnDemand returns an empty set for nil, otherwise an independent copy
// of src.
func CreateOnDemand(src *Set) *Set {
	if src == nil {
		return NewSet()
	}
	return src.Clone()
}

func (s *Set) init() {
	if s.members == nil {
		s.members = make(map[Medium]struct{})
	}
}

// Add inserts m. Adding a medium that is already present is a no-op.
func (s *Set) Add(m Medium) error {
	if !m.IsValid() {
		return fmt.Errorf("add medium %d: %w", int(m), ErrInvalidArgument)
	}
	s.init()
	s.members[m] = struct{}{}
	return nil
}

// AddAll inserts every medium. Nothing is added if any argument is invalid.
func (s *Set) AddAll(ms ...Medium) error {
	for _, m := range ms {
		if !m.IsValid() {
			return fmt.Errorf("add media: medium %d: %w", int(m), ErrInvalidArgument)
		}
	}
	s.init()
	for _, m := range ms {
		s.members[m] = struct{}{}
	}
	return nil
}

// AddSet inserts every member of other.
func (s *Set) AddSet(other *Set) error {
	if other == nil {
		return fmt.Errorf("add media: nil set: %w", ErrInvalidArgument)
	}
	s.init()
	for m := range other.members {
		s.members[m] = struct{}{}
	}
	return nil
}

// Remove deletes m and reports whether the set changed.
func (s *Set) Remove(m Medium) bool {
	if _, ok := s.members[m]; !ok {
		return false
	}
	delete(s.members, m)
	return true
}

// RemoveAll empties the set and reports whether it held anything.
func (s *Set) RemoveAll() bool {
	if len(s.members) == 0 {
		return false
	}
	clear(s.members)
	return true
}

// Len returns the number of media.
func (s *Set) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set holds no media.
func (s *Set) IsEmpty() bool {
	return len(s.members) == 0
}

// Contains reports whether m is a member.
func (s *Set) Contains(m Medium) bool {
	_, ok := s.members[m]
	return ok
}

// ContainsOrAll reports whether m or the wildcard "all" is a member.
func (s *Set) ContainsOrAll(m Medium) bool {
	return s.Contains(m) || s.Contains(All)
}

// HasNoMediaOrAll reports whether the set is empty or contains "all".
func (s *Set) HasNoMediaOrAll() bool {
	return s.IsEmpty() || s.Contains(All)
}

// IsForScreen reports whether rules qualified by this set apply to screens.
// A missing media qualifier defaults to screen.
func (s *Set) IsForScreen() bool {
	return s.IsEmpty() || s.ContainsOrAll(Screen)
}

// Media returns the members sorted by name.
func (s *Set) Media() []Medium {
	out := make([]Medium, 0, len(s.members))
	for m := range s.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Join returns the sorted member names joined by sep.
func (s *Set) Join(sep string) string {
	if len(s.members) == 0 {
		return ""
	}
	names := make([]string, 0, len(s.members))
	for _, m := range s.Media() {
		names = append(names, m.String())
	}
	return strings.Join(names, sep)
}

// String joins the sorted member names with ", ".
func (s *Set) String() string {
	return s.Join(DefaultSeparator)
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{members: make(map[Medium]struct{}, len(s.members))}
	for m := range s.members {
		c.members[m] = struct{}{}
	}
	return c
}

// Equal reports whether both sets hold the same media.
func (s *Set) Equal(other *Set) bool {
	if other == nil {
		return false
	}
	if len(s.members) != len(other.members) {
		return false
	}
	for m := range s.members {
		if _, ok := other.members[m]; !ok {
			return false
		}
	}
	return true
}
