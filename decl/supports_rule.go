package decl

import (
	"strings"

	"github.com/yacobolo/cssdom/writer"
)

// SupportsRule is an @supports rule: nested rules that only apply when the
// condition holds.
//
//	@supports (transition-property: color) {
//	  div { color: red; }
//	}
type SupportsRule struct {
	located
	members nodeList[ConditionMember]
	rules   nodeList[Rule]
}

// NewSupportsRule returns an empty rule.
func NewSupportsRule() *SupportsRule {
	return &SupportsRule{}
}

// HasConditionMembers reports whether any condition member is present.
func (r *SupportsRule) HasConditionMembers() bool {
	return r.members.len() > 0
}

// ConditionMemberCount returns the number of condition members.
func (r *SupportsRule) ConditionMemberCount() int {
	return r.members.len()
}

// AddConditionMember appends m.
func (r *SupportsRule) AddConditionMember(m ConditionMember) error {
	return r.members.add(m)
}

// InsertConditionMember inserts m at index. An index at or past the end
// appends; a negative index is rejected.
func (r *SupportsRule) InsertConditionMember(index int, m ConditionMember) error {
	return r.members.insert(index, m)
}

// RemoveConditionMember removes the first member equal to m.
func (r *SupportsRule) RemoveConditionMember(m ConditionMember) bool {
	if isNil(m) {
		return false
	}
	return r.members.remove(m)
}

// RemoveConditionMemberAt removes the member at index. Out of range is a no-op.
func (r *SupportsRule) RemoveConditionMemberAt(index int) bool {
	return r.members.removeAt(index)
}

// RemoveAllConditionMembers removes every condition member.
func (r *SupportsRule) RemoveAllConditionMembers() bool {
	return r.members.removeAll()
}

// ConditionMemberAt returns the member at index.
func (r *SupportsRule) ConditionMemberAt(index int) (ConditionMember, bool) {
	return r.members.at(index)
}

// ConditionMembers returns a copy of the condition members.
func (r *SupportsRule) ConditionMembers() []ConditionMember {
	return r.members.all()
}

// HasRules reports whether any nested rule is present.
func (r *SupportsRule) HasRules() bool {
	return r.rules.len() > 0
}

// RuleCount returns the number of nested rules.
func (r *SupportsRule) RuleCount() int {
	return r.rules.len()
}

// AddRule appends a nested rule.
func (r *SupportsRule) AddRule(rule Rule) error {
	return r.rules.add(rule)
}

// InsertRule inserts a nested rule at index, appending past the end.
func (r *SupportsRule) InsertRule(index int, rule Rule) error {
	return r.rules.insert(index, rule)
}

// RemoveRule removes the first nested rule equal to rule.
func (r *SupportsRule) RemoveRule(rule Rule) bool {
	if isNil(rule) {
		return false
	}
	return r.rules.remove(rule)
}

// RemoveRuleAt removes the nested rule at index. Out of range is a no-op.
func (r *SupportsRule) RemoveRuleAt(index int) bool {
	return r.rules.removeAt(index)
}

// RemoveAllRules removes every nested rule.
func (r *SupportsRule) RemoveAllRules() bool {
	return r.rules.removeAll()
}

// RuleAt returns the nested rule at index.
func (r *SupportsRule) RuleAt(index int) (Rule, bool) {
	return r.rules.at(index)
}

// Rules returns a copy of the nested rules.
func (r *SupportsRule) Rules() []Rule {
	return r.rules.all()
}

// MinimumVersion implements Rule.
func (r *SupportsRule) MinimumVersion() writer.Version {
	return writer.CSS30
}

// ConditionText renders the condition members separated by single spaces.
func (r *SupportsRule) ConditionText(s writer.Settings, indentLevel int) (string, error) {
	parts := make([]string, 0, r.members.len())
	for _, m := range r.members.items {
		text, err := m.Render(s, indentLevel)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " "), nil
}

// Render implements Rule. The elision check only looks at the number of
// nested rules, so a rule whose children all render empty still writes
// its braces.
func (r *SupportsRule) Render(s writer.Settings, indentLevel int) (string, error) {
	if err := s.CheckVersion(r); err != nil {
		return "", err
	}
	if !s.WriteSupportsRules {
		return "", nil
	}
	if s.RemoveUnnecessaryCode && r.rules.len() == 0 {
		return "", nil
	}

	cond, err := r.ConditionText(s, indentLevel)
	if err != nil {
		return "", err
	}
	return renderRuleBlock("@supports "+cond, r.rules.items, s, indentLevel)
}

// Equal compares condition members and nested rules in order.
func (r *SupportsRule) Equal(other Rule) bool {
	o, ok := other.(*SupportsRule)
	if !ok || o == nil {
		return false
	}
	return r.members.equal(&o.members) && r.rules.equal(&o.rules)
}
