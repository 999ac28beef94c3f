// Package media models CSS media types and the unique medium sets used by
// media-conditional rules such as @import and @media.
package media

import (
	"errors"
	"strings"
)

// ErrInvalidArgument is returned when a caller passes the zero Medium, an
// unknown Medium or a nil Set.
var ErrInvalidArgument = errors.New("invalid argument")

// Medium is a CSS media type. The zero value is not a medium.
type Medium int

// Known media types
const (
	All Medium = iota + 1
	Aural
	Braille
	Embossed
	Handheld
	Print
	Projection
	Screen
	Speech
	TTY
	TV
)

var mediumNames = map[Medium]string{
	All:        "all",
	Aural:      "aural",
	Braille:    "braille",
	Embossed:   "embossed",
	Handheld:   "handheld",
	Print:      "print",
	Projection: "projection",
	Screen:     "screen",
	Speech:     "speech",
	TTY:        "tty",
	TV:         "tv",
}

// String returns the CSS name, or "" for values that are not media.
func (m Medium) String() string {
	return mediumNames[m]
}

// IsValid reports whether m is one of the known media types.
func (m Medium) IsValid() bool {
	_, ok := mediumNames[m]
	return ok
}

// ParseMedium resolves a CSS media type name, ignoring case.
func ParseMedium(name string) (Medium, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range mediumNames {
		if n == name {
			return m, true
		}
	}
	return 0, false
}

// AllMedia returns every known medium sorted by name.
func AllMedia() []Medium {
	s := NewSet()
	for m := range mediumNames {
		s.members[m] = struct{}{}
	}
	return s.Media()
}
