package decl

import (
	"fmt"
	"strings"

	"github.com/yacobolo/cssdom/writer"
)

// ConditionDeclaration is a "(property: value)" test.
type ConditionDeclaration struct {
	Declaration *Declaration
}

// NewConditionDeclaration builds a declaration test.
func NewConditionDeclaration(property, value string) (*ConditionDeclaration, error) {
	d, err := NewDeclaration(property, value, false)
	if err != nil {
		return nil, err
	}
	return &ConditionDeclaration{Declaration: d}, nil
}

// Render fails when the test has no declaration.
func (c *ConditionDeclaration) Render(s writer.Settings, _ int) (string, error) {
	if c.Declaration == nil {
		return "", fmt.Errorf("render condition: missing declaration: %w", ErrInvalidArgument)
	}
	return "(" + c.Declaration.Render(s) + ")", nil
}

func (c *ConditionDeclaration) Equal(other ConditionMember) bool {
	o, ok := other.(*ConditionDeclaration)
	return ok && o != nil && c.Declaration.Equal(o.Declaration)
}

// ConditionNegation is "not <member>".
type ConditionNegation struct {
	Member ConditionMember
}

// NewConditionNegation negates m.
func NewConditionNegation(m ConditionMember) (*ConditionNegation, error) {
	if isNil(m) {
		return nil, fmt.Errorf("negate nil member: %w", ErrInvalidArgument)
	}
	return &ConditionNegation{Member: m}, nil
}

// Render fails when there is nothing to negate.
func (c *ConditionNegation) Render(s writer.Settings, indentLevel int) (string, error) {
	if isNil(c.Member) {
		return "", fmt.Errorf("render negation: missing member: %w", ErrInvalidArgument)
	}
	text, err := c.Member.Render(s, indentLevel)
	if err != nil {
		return "", err
	}
	return "not " + text, nil
}

func (c *ConditionNegation) Equal(other ConditionMember) bool {
	o, ok := other.(*ConditionNegation)
	return ok && o != nil && nodeEqual(c.Member, o.Member)
}

// ConditionFunction is a functional test such as "selector(a > b)", kept as
// written.
type ConditionFunction struct {
	Text string
}

// NewConditionFunction wraps text, which must name a function call.
func NewConditionFunction(text string) (*ConditionFunction, error) {
	text = strings.TrimSpace(text)
	open := strings.IndexByte(text, '(')
	if open <= 0 || !strings.HasSuffix(text, ")") {
		return nil, fmt.Errorf("condition function %q: %w", text, ErrInvalidArgument)
	}
	return &ConditionFunction{Text: text}, nil
}

func (c *ConditionFunction) Render(_ writer.Settings, _ int) (string, error) {
	if c.Text == "" {
		return "", fmt.Errorf("render condition function: empty text: %w", ErrInvalidArgument)
	}
	return c.Text, nil
}

func (c *ConditionFunction) Equal(other ConditionMember) bool {
	o, ok := other.(*ConditionFunction)
	return ok && o != nil && c.Text == o.Text
}

// ConditionNested is a parenthesized group of members.
type ConditionNested struct {
	members nodeList[ConditionMember]
}

// NewConditionNested groups members in order.
func NewConditionNested(members ...ConditionMember) (*ConditionNested, error) {
	c := &ConditionNested{}
	for _, m := range members {
		if err := c.AddMember(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddMember appends m to the group.
func (c *ConditionNested) AddMember(m ConditionMember) error {
	return c.members.add(m)
}

// Members returns a copy of the grouped members.
func (c *ConditionNested) Members() []ConditionMember {
	return c.members.all()
}

func (c *ConditionNested) Render(s writer.Settings, indentLevel int) (string, error) {
	parts := make([]string, 0, c.members.len())
	for _, m := range c.members.items {
		text, err := m.Render(s, indentLevel)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return "(" + strings.Join(parts, " ") + ")", nil
}

func (c *ConditionNested) Equal(other ConditionMember) bool {
	o, ok := other.(*ConditionNested)
	return ok && o != nil && c.members.equal(&o.members)
}

// ConditionOperator joins two members of a condition.
type ConditionOperator int

const (
	OperatorAnd ConditionOperator = iota + 1
	OperatorOr
)

// ParseConditionOperator resolves "and" or "or", ignoring case.
func ParseConditionOperator(text string) (ConditionOperator, bool) {
	switch strings.ToLower(text) {
	case "and":
		return OperatorAnd, true
	case "or":
		return OperatorOr, true
	}
	return 0, false
}

func (o ConditionOperator) String() string {
	switch o {
	case OperatorAnd:
		return "and"
	case OperatorOr:
		return "or"
	}
	return fmt.Sprintf("ConditionOperator(%d)", int(o))
}

func (o ConditionOperator) Render(_ writer.Settings, _ int) (string, error) {
	if o != OperatorAnd && o != OperatorOr {
		return "", fmt.Errorf("unknown condition operator %d: %w", int(o), ErrInvalidArgument)
	}
	return o.String(), nil
}
