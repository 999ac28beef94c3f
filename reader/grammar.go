package reader

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/cssdom/decl"
	"github.com/yacobolo/cssdom/media"
	"github.com/yacobolo/cssdom/writer"
)

// writerDefaults formats text for log fields.
var writerDefaults = writer.NewSettings(writer.CSS30, false)

// nest tracks bracket depth. Closing tokens never take it below zero.
func nest(depth int, tt css.TokenType) int {
	switch tt {
	case css.LeftBraceToken, css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
		return depth + 1
	case css.RightBraceToken, css.RightParenthesisToken, css.RightBracketToken:
		if depth > 0 {
			return depth - 1
		}
	}
	return depth
}

func lastSignificant(tokens []Token) (Token, bool) {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].Type != css.WhitespaceToken {
			return tokens[i], true
		}
	}
	return Token{}, false
}

// splitTokens splits on sep at bracket depth zero. It always returns at
// least one part.
func splitTokens(tokens []Token, sep css.TokenType) [][]Token {
	parts := [][]Token{nil}
	depth := 0
	for _, t := range tokens {
		if depth == 0 && t.Type == sep {
			parts = append(parts, nil)
			continue
		}
		depth = nest(depth, t.Type)
		parts[len(parts)-1] = append(parts[len(parts)-1], t)
	}
	return parts
}

// joinTokens concatenates token text, collapsing whitespace runs into one
// space and trimming both ends.
func joinTokens(tokens []Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		if t.Type == css.WhitespaceToken {
			space = sb.Len() > 0
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// splitImportant strips a trailing "!important" from value tokens.
func splitImportant(tokens []Token) ([]Token, bool) {
	i := len(tokens) - 1
	for i >= 0 && tokens[i].Type == css.WhitespaceToken {
		i--
	}
	if i < 0 || tokens[i].Type != css.IdentToken || !strings.EqualFold(tokens[i].Text, "important") {
		return tokens, false
	}
	j := i - 1
	for j >= 0 && tokens[j].Type == css.WhitespaceToken {
		j--
	}
	if j < 0 || tokens[j].Type != css.DelimToken || tokens[j].Text != "!" {
		return tokens, false
	}
	return tokens[:j], true
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// parseMediaQuery parses one entry of a media query list:
//
//	[not|only] medium [and (expr)]*
//	(expr) [and (expr)]*
//
// On failure it returns nil and the index of the offending token.
func parseMediaQuery(tokens []Token) (*decl.MediaQuery, int) {
	i := 0
	skip := func() {
		for i < len(tokens) && tokens[i].Type == css.WhitespaceToken {
			i++
		}
	}
	isIdent := func(name string) bool {
		return i < len(tokens) && tokens[i].Type == css.IdentToken && strings.EqualFold(tokens[i].Text, name)
	}

	skip()
	modifier := decl.ModifierNone
	switch {
	case isIdent("not"):
		modifier = decl.ModifierNot
	case isIdent("only"):
		modifier = decl.ModifierOnly
	}
	if modifier != decl.ModifierNone {
		i++
		skip()
	}

	var medium media.Medium
	if i < len(tokens) && tokens[i].Type == css.IdentToken {
		m, ok := media.ParseMedium(tokens[i].Text)
		if !ok {
			return nil, i
		}
		medium = m
		i++
	} else if modifier != decl.ModifierNone {
		return nil, i
	}

	var exprs []string
	needAnd := medium != 0
	for {
		skip()
		if i >= len(tokens) {
			break
		}
		if needAnd {
			if !isIdent("and") {
				return nil, i
			}
			i++
			skip()
		}
		if i >= len(tokens) || tokens[i].Type != css.LeftParenthesisToken {
			return nil, i
		}
		end := matchingClose(tokens, i)
		if end < 0 {
			return nil, len(tokens)
		}
		exprs = append(exprs, joinTokens(tokens[i:end+1]))
		i = end + 1
		needAnd = true
	}

	q, err := decl.NewMediaQuery(modifier, medium, exprs...)
	if err != nil {
		return nil, i
	}
	return q, i
}

// matchingClose returns the index of the token closing the bracket opened
// at start, or -1.
func matchingClose(tokens []Token, start int) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		depth = nest(depth, tokens[i].Type)
		if depth == 0 {
			return i
		}
	}
	return -1
}

// conditionParser reads an @supports condition from prelude tokens. After
// a failure pos points at the offending token.
type conditionParser struct {
	tokens []Token
	pos    int
}

func (c *conditionParser) peek() Token {
	if c.pos >= len(c.tokens) {
		return Token{Type: css.ErrorToken}
	}
	return c.tokens[c.pos]
}

func (c *conditionParser) skip() {
	for c.pos < len(c.tokens) && c.tokens[c.pos].Type == css.WhitespaceToken {
		c.pos++
	}
}

func (c *conditionParser) condition() ([]decl.ConditionMember, bool) {
	return c.members(css.ErrorToken)
}

// members reads members until the until token, which is not consumed.
func (c *conditionParser) members(until css.TokenType) ([]decl.ConditionMember, bool) {
	var out []decl.ConditionMember
	for {
		c.skip()
		t := c.peek()
		if t.Type == until {
			break
		}
		if t.Type == css.ErrorToken {
			return nil, false
		}
		m, ok := c.member()
		if !ok {
			return nil, false
		}
		out = append(out, m)
	}
	return out, len(out) > 0
}

func (c *conditionParser) member() (decl.ConditionMember, bool) {
	t := c.peek()
	switch t.Type {
	case css.IdentToken:
		if strings.EqualFold(t.Text, "not") {
			c.pos++
			c.skip()
			inner, ok := c.member()
			if !ok {
				return nil, false
			}
			neg, err := decl.NewConditionNegation(inner)
			return neg, err == nil
		}
		if op, ok := decl.ParseConditionOperator(t.Text); ok {
			c.pos++
			return op, true
		}
	case css.LeftParenthesisToken:
		c.pos++
		return c.parenthesized()
	case css.FunctionToken:
		// "not(" lexes as a single function token.
		if strings.EqualFold(t.Text, "not(") {
			c.pos++
			inner, ok := c.parenthesized()
			if !ok {
				return nil, false
			}
			neg, err := decl.NewConditionNegation(inner)
			return neg, err == nil
		}
		if strings.EqualFold(t.Text, "selector(") {
			end := matchingClose(c.tokens, c.pos)
			if end < 0 {
				c.pos = len(c.tokens)
				return nil, false
			}
			fn, err := decl.NewConditionFunction(joinTokens(c.tokens[c.pos : end+1]))
			if err != nil {
				return nil, false
			}
			c.pos = end + 1
			return fn, true
		}
	}
	return nil, false
}

// parenthesized reads the rest of a group after its opening parenthesis,
// either a declaration test or nested members.
func (c *conditionParser) parenthesized() (decl.ConditionMember, bool) {
	c.skip()
	if c.isDeclaration() {
		prop := c.peek()
		c.pos++
		c.skip()
		c.pos++ // ':'

		start := c.pos
		depth := 0
		for {
			t := c.peek()
			if t.Type == css.ErrorToken {
				return nil, false
			}
			if depth == 0 && t.Type == css.RightParenthesisToken {
				break
			}
			depth = nest(depth, t.Type)
			c.pos++
		}
		value := joinTokens(c.tokens[start:c.pos])
		cd, err := decl.NewConditionDeclaration(prop.Text, value)
		if err != nil {
			return nil, false
		}
		c.pos++ // ')'
		return cd, true
	}

	members, ok := c.members(css.RightParenthesisToken)
	if !ok {
		return nil, false
	}
	c.pos++ // ')'
	nested, err := decl.NewConditionNested(members...)
	return nested, err == nil
}

func (c *conditionParser) isDeclaration() bool {
	t := c.peek()
	if t.Type != css.IdentToken && t.Type != css.CustomPropertyNameToken {
		return false
	}
	i := c.pos + 1
	for i < len(c.tokens) && c.tokens[i].Type == css.WhitespaceToken {
		i++
	}
	return i < len(c.tokens) && c.tokens[i].Type == css.ColonToken
}
