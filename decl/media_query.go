package decl

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yacobolo/cssdom/media"
)

// QueryModifier is the optional leading keyword of a media query.
type QueryModifier int

const (
	ModifierNone QueryModifier = iota
	ModifierNot
	ModifierOnly
)

func (m QueryModifier) String() string {
	switch m {
	case ModifierNot:
		return "not"
	case ModifierOnly:
		return "only"
	}
	return ""
}

// MediaQuery is one comma-separated entry of an @media prelude, for example
// "only screen and (min-width: 40em)". Feature expressions are verbatim.
type MediaQuery struct {
	Modifier    QueryModifier
	Medium      media.Medium // zero when the query has only expressions
	Expressions []string
}

// NewMediaQuery builds a query. A query needs a medium or at least one
// expression, and a modifier requires a medium.
func NewMediaQuery(modifier QueryModifier, medium media.Medium, expressions ...string) (*MediaQuery, error) {
	if medium != 0 && !medium.IsValid() {
		return nil, fmt.Errorf("medium %d: %w", int(medium), ErrInvalidArgument)
	}
	if modifier != ModifierNone && medium == 0 {
		return nil, fmt.Errorf("%s without medium: %w", modifier, ErrInvalidArgument)
	}
	q := &MediaQuery{Modifier: modifier, Medium: medium}
	for _, e := range expressions {
		e = strings.TrimSpace(e)
		if e == "" {
			return nil, fmt.Errorf("empty media expression: %w", ErrInvalidArgument)
		}
		q.Expressions = append(q.Expressions, e)
	}
	if medium == 0 && len(q.Expressions) == 0 {
		return nil, fmt.Errorf("empty media query: %w", ErrInvalidArgument)
	}
	return q, nil
}

// Render returns the query text. The output is the same in both modes.
func (q *MediaQuery) Render() string {
	var parts []string
	if q.Medium != 0 {
		head := q.Medium.String()
		if q.Modifier != ModifierNone {
			head = q.Modifier.String() + " " + head
		}
		parts = append(parts, head)
	}
	parts = append(parts, q.Expressions...)
	return strings.Join(parts, " and ")
}

func (q *MediaQuery) String() string { return q.Render() }

// Equal compares modifier, medium and expressions.
func (q *MediaQuery) Equal(other *MediaQuery) bool {
	if other == nil {
		return false
	}
	return q.Modifier == other.Modifier && q.Medium == other.Medium &&
		slices.Equal(q.Expressions, other.Expressions)
}
