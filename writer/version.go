package writer

import (
	"errors"
	"fmt"
	"strings"
)

// Version is a CSS language level. Later levels compare greater.
type Version int

// Supported CSS levels
const (
	CSS10 Version = iota + 1
	CSS21
	CSS30
)

// ErrIncompatibleVersion matches every *VersionError.
var ErrIncompatibleVersion = errors.New("incompatible CSS version")

// VersionAware is implemented by every node that is gated on a CSS level.
type VersionAware interface {
	MinimumVersion() Version
}

// String returns the human readable level, e.g. "CSS 2.1".
func (v Version) String() string {
	switch v {
	case CSS10:
		return "CSS 1.0"
	case CSS21:
		return "CSS 2.1"
	case CSS30:
		return "CSS 3.0"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// NewerThan reports whether v is a later level than other.
func (v Version) NewerThan(other Version) bool {
	return v > other
}

// ParseVersion accepts "1", "1.0", "css1", "2.1", "css21", "3", "3.0", "css3"
// and similar spellings.
func ParseVersion(text string) (Version, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimPrefix(s, "css")
	s = strings.TrimSpace(s)
	switch s {
	case "1", "1.0", "10":
		return CSS10, nil
	case "2", "2.1", "21":
		return CSS21, nil
	case "3", "3.0", "30":
		return CSS30, nil
	}
	return 0, fmt.Errorf("unknown CSS version %q", text)
}

// VersionError is returned when a node needs a newer CSS level than the
// settings target.
type VersionError struct {
	Required Version
	Target   Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("node requires %s but target is %s", e.Required, e.Target)
}

// Is makes errors.Is(err, ErrIncompatibleVersion) succeed.
func (e *VersionError) Is(target error) bool {
	return target == ErrIncompatibleVersion
}
