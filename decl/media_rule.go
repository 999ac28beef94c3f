package decl

import (
	"strings"

	"github.com/yacobolo/cssdom/media"
	"github.com/yacobolo/cssdom/writer"
)

// MediaRule is an @media block.
type MediaRule struct {
	located
	queries nodeList[*MediaQuery]
	rules   nodeList[Rule]
}

// NewMediaRule returns a rule holding the given queries.
func NewMediaRule(queries ...*MediaQuery) (*MediaRule, error) {
	r := &MediaRule{}
	for _, q := range queries {
		if err := r.AddMediaQuery(q); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// AddMediaQuery appends q to the query list.
func (r *MediaRule) AddMediaQuery(q *MediaQuery) error {
	return r.queries.add(q)
}

// InsertMediaQuery places q at index. An index past the end appends.
func (r *MediaRule) InsertMediaQuery(index int, q *MediaQuery) error {
	return r.queries.insert(index, q)
}

// RemoveMediaQuery deletes the first query equal to q.
func (r *MediaRule) RemoveMediaQuery(q *MediaQuery) bool {
	if q == nil {
		return false
	}
	return r.queries.remove(q)
}

// RemoveMediaQueryAt deletes the query at index and reports whether one existed.
func (r *MediaRule) RemoveMediaQueryAt(index int) bool {
	return r.queries.removeAt(index)
}

// RemoveAllMediaQueries empties the query list.
func (r *MediaRule) RemoveAllMediaQueries() bool {
	return r.queries.removeAll()
}

// MediaQueryAt returns the query at index.
func (r *MediaRule) MediaQueryAt(index int) (*MediaQuery, bool) {
	return r.queries.at(index)
}

// MediaQueries returns a copy of the query list.
func (r *MediaRule) MediaQueries() []*MediaQuery {
	return r.queries.all()
}

func (r *MediaRule) MediaQueryCount() int {
	return r.queries.len()
}

func (r *MediaRule) HasMediaQueries() bool {
	return r.queries.len() > 0
}

// AddRule appends a nested rule.
func (r *MediaRule) AddRule(rule Rule) error {
	return r.rules.add(rule)
}

// InsertRule places rule at index. An index past the end appends.
func (r *MediaRule) InsertRule(index int, rule Rule) error {
	return r.rules.insert(index, rule)
}

// RemoveRule deletes the first nested rule equal to rule.
func (r *MediaRule) RemoveRule(rule Rule) bool {
	if isNil(rule) {
		return false
	}
	return r.rules.remove(rule)
}

// RemoveRuleAt deletes the nested rule at index.
func (r *MediaRule) RemoveRuleAt(index int) bool {
	return r.rules.removeAt(index)
}

// RemoveAllRules empties the block.
func (r *MediaRule) RemoveAllRules() bool {
	return r.rules.removeAll()
}

func (r *MediaRule) RuleAt(index int) (Rule, bool) {
	return r.rules.at(index)
}

// Rules returns a copy of the nested rules.
func (r *MediaRule) Rules() []Rule {
	return r.rules.all()
}

func (r *MediaRule) RuleCount() int {
	return r.rules.len()
}

func (r *MediaRule) HasRules() bool {
	return r.rules.len() > 0
}

// Media collects the media named by the queries. Expression-only queries
// and queries whose Medium is not a known medium contribute nothing.
func (r *MediaRule) Media() *media.Set {
	set := media.NewSet()
	for _, q := range r.queries.items {
		if q.Medium.IsValid() {
			_ = set.Add(q.Medium) // cannot fail for a valid medium
		}
	}
	return set
}

// IsForScreen reports whether the rule can apply to screen output.
func (r *MediaRule) IsForScreen() bool {
	return r.Media().IsForScreen()
}

// MinimumVersion implements Rule.
func (r *MediaRule) MinimumVersion() writer.Version {
	return writer.CSS21
}

// QueryText joins the queries the way Render does.
func (r *MediaRule) QueryText(s writer.Settings) string {
	parts := make([]string, 0, r.queries.len())
	for _, q := range r.queries.items {
		parts = append(parts, q.Render())
	}
	if s.OptimizedOutput {
		return strings.Join(parts, ",")
	}
	return strings.Join(parts, ", ")
}

// Render implements Rule with the same elision order as SupportsRule.
func (r *MediaRule) Render(s writer.Settings, indentLevel int) (string, error) {
	if err := s.CheckVersion(r); err != nil {
		return "", err
	}
	if !s.WriteMediaRules {
		return "", nil
	}
	if s.RemoveUnnecessaryCode && r.rules.len() == 0 {
		return "", nil
	}
	return renderRuleBlock("@media "+r.QueryText(s), r.rules.items, s, indentLevel)
}

// Equal compares queries and nested rules in order.
func (r *MediaRule) Equal(other Rule) bool {
	o, ok := other.(*MediaRule)
	if !ok || o == nil {
		return false
	}
	return r.queries.equal(&o.queries) && r.rules.equal(&o.rules)
}
