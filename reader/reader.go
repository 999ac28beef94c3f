// Package reader turns CSS text into a decl.Stylesheet.
//
// Reading is fault tolerant. Malformed input is reported to an
// ErrorHandler and skipped up to the next point where the grammar can
// resynchronize; a handler that returns an error stops the read.
package reader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/yacobolo/cssdom/decl"
	"github.com/yacobolo/cssdom/media"
)

// Reader builds stylesheets. It holds no per-read state and can be shared
// between goroutines.
type Reader struct {
	log *zap.Logger
}

// New creates a reader. A nil logger disables logging.
func New(log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{log: log.Named("css-reader")}
}

// ReadString parses text. Faults go to h; a nil h ignores them.
func (r *Reader) ReadString(text string, h ErrorHandler) (*decl.Stylesheet, error) {
	if h == nil {
		h = DoNothingHandler{}
	}
	p := &parser{
		tokens:  tokenize(text),
		handler: h,
		names:   tokenNames,
		log:     r.log,
	}
	ss, err := p.stylesheet()
	if err != nil {
		return nil, err
	}
	r.log.Debug("Read stylesheet", zap.Int("bytes", len(text)), zap.Int("rules", ss.RuleCount()))
	return ss, nil
}

// Read parses everything rd yields.
func (r *Reader) Read(rd io.Reader, h ErrorHandler) (*decl.Stylesheet, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read css: %w", err)
	}
	return r.ReadString(string(data), h)
}

// ReadFile parses the file at path.
func (r *Reader) ReadFile(path string, h ErrorHandler) (*decl.Stylesheet, error) {
	// #nosec G304 - path comes from the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	r.log.Debug("Reading CSS", zap.String("source", path), zap.Int("bytes", len(data)))
	return r.ReadString(string(data), h)
}

var (
	expectLeftBrace  = [][]css.TokenType{{css.LeftBraceToken}}
	expectRightBrace = [][]css.TokenType{{css.RightBraceToken}}
	expectColon      = [][]css.TokenType{{css.ColonToken}}
	expectSemicolon  = [][]css.TokenType{{css.SemicolonToken}}
	expectProperty   = [][]css.TokenType{{css.IdentToken}, {css.CustomPropertyNameToken}}
	expectImportURL  = [][]css.TokenType{{css.URLToken}, {css.StringToken}}
	expectMedium     = [][]css.TokenType{{css.IdentToken}}
	expectImportTail = [][]css.TokenType{{css.IdentToken}, {css.SemicolonToken}}
	expectMediaQuery = [][]css.TokenType{{css.IdentToken}, {css.LeftParenthesisToken}}
	expectCondition  = [][]css.TokenType{{css.LeftParenthesisToken}, {css.IdentToken}}
	expectSelector   = [][]css.TokenType{
		{css.IdentToken}, {css.HashToken}, {css.DelimToken}, {css.ColonToken}, {css.LeftBracketToken},
	}
	expectRuleStart = append([][]css.TokenType{{css.AtKeywordToken}}, expectSelector...)
	expectValue     = [][]css.TokenType{
		{css.IdentToken}, {css.NumberToken}, {css.DimensionToken}, {css.PercentageToken},
		{css.StringToken}, {css.FunctionToken}, {css.HashToken}, {css.URLToken},
	}
)

// parser is the state of a single read.
type parser struct {
	tokens   []Token
	pos      int
	handler  ErrorHandler
	names    TokenNames
	log      *zap.Logger
	seenRule bool // a top-level rule other than @charset or @import was read
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

// next consumes a token. The trailing end-of-input token is never consumed.
func (p *parser) next() Token {
	t := p.tokens[p.pos]
	if t.Type != css.ErrorToken {
		p.pos++
	}
	return t
}

func (p *parser) skipWhitespace() {
	for p.tokens[p.pos].Type == css.WhitespaceToken {
		p.pos++
	}
}

// lastValid returns the last non-whitespace token already consumed.
func (p *parser) lastValid() Token {
	if t, ok := lastSignificant(p.tokens[:p.pos]); ok {
		return t
	}
	return p.peek()
}

// fail reports a mismatch at the current position, then resynchronizes.
func (p *parser) fail(expected [][]css.TokenType, resync func() *Token) error {
	last := p.lastValid()
	return p.report(last, expected, resync())
}

func (p *parser) report(last Token, expected [][]css.TokenType, skipped *Token) error {
	return p.handler.TokenError(last, expected, p.names, skipped)
}

func noResync() *Token { return nil }

// skipStatement consumes tokens up to and including the next ';' or the
// end of the next {} block at the current nesting level. A '}' closing the
// enclosing block is left in place.
func (p *parser) skipStatement() *Token {
	depth := 0
	var last *Token
	for {
		t := p.peek()
		if t.Type == css.ErrorToken || depth == 0 && t.Type == css.RightBraceToken {
			return last
		}
		tok := p.next()
		last = &tok
		depth = nest(depth, tok.Type)
		if depth == 0 && (tok.Type == css.SemicolonToken || tok.Type == css.RightBraceToken) {
			return last
		}
	}
}

// skipTerminator consumes a ';' if one is next.
func (p *parser) skipTerminator() *Token {
	if p.peek().Type == css.SemicolonToken {
		tok := p.next()
		return &tok
	}
	return nil
}

// prelude collects the tokens before a '{'. It fails on ';', '}' or the end
// of input, leaving that token in place.
func (p *parser) prelude() ([]Token, bool) {
	var out []Token
	depth := 0
	for {
		t := p.peek()
		switch {
		case t.Type == css.ErrorToken:
			return out, false
		case depth == 0 && t.Type == css.LeftBraceToken:
			return out, true
		case depth == 0 && (t.Type == css.SemicolonToken || t.Type == css.RightBraceToken):
			return out, false
		}
		depth = nest(depth, t.Type)
		out = append(out, p.next())
	}
}

func (p *parser) stylesheet() (*decl.Stylesheet, error) {
	ss := decl.NewStylesheet()
	for {
		p.skipWhitespace()
		switch p.peek().Type {
		case css.ErrorToken:
			return ss, nil
		case css.CDOToken, css.CDCToken, css.SemicolonToken:
			p.next()
			continue
		case css.RightBraceToken:
			last := p.lastValid()
			stray := p.next()
			if err := p.report(last, expectRuleStart, &stray); err != nil {
				return nil, err
			}
			continue
		}

		rule, err := p.rule(true)
		if err != nil {
			return nil, err
		}
		if rule != nil {
			if err := ss.AddRule(rule); err != nil {
				return nil, err
			}
		}
	}
}

// ruleList reads nested rules after an opening brace up to the matching
// closing brace, which it returns.
func (p *parser) ruleList(add func(decl.Rule) error) (Token, error) {
	for {
		p.skipWhitespace()
		t := p.peek()
		switch t.Type {
		case css.RightBraceToken:
			return p.next(), nil
		case css.ErrorToken:
			return t, p.fail(expectRightBrace, noResync)
		case css.SemicolonToken, css.CDOToken, css.CDCToken:
			p.next()
			continue
		}

		rule, err := p.rule(false)
		if err != nil {
			return t, err
		}
		if rule != nil {
			if err := add(rule); err != nil {
				return t, err
			}
		}
	}
}

func (p *parser) rule(topLevel bool) (decl.Rule, error) {
	if p.peek().Type == css.AtKeywordToken {
		return p.atRule(topLevel)
	}
	if topLevel {
		p.seenRule = true
	}
	return p.styleRule()
}

func (p *parser) atRule(topLevel bool) (decl.Rule, error) {
	start := p.next()
	name := strings.ToLower(start.Text)

	switch name {
	case "@charset":
		p.skipStatement()
		return nil, nil
	case "@import":
		if !topLevel {
			p.skipStatement()
			return nil, p.handler.UnexpectedRule(start, start.Text, "@import is only allowed at the top level")
		}
		if p.seenRule {
			p.skipStatement()
			return nil, p.handler.UnexpectedRule(start, start.Text, "@import must precede all other rules")
		}
		return p.importRule(start)
	}

	if topLevel {
		p.seenRule = true
	}
	switch name {
	case "@media":
		return p.mediaRule(start)
	case "@supports":
		return p.supportsRule(start)
	case "@font-face":
		return p.fontFaceRule(start)
	}

	p.skipStatement()
	p.log.Debug("Skipping @-rule", zap.String("rule", start.Text))
	return nil, p.handler.UnexpectedRule(start, start.Text, "unsupported at-rule")
}

func (p *parser) styleRule() (decl.Rule, error) {
	start := p.peek()
	tokens, ok := p.prelude()
	if !ok {
		return nil, p.fail(expectLeftBrace, p.skipTerminator)
	}

	var selectors []string
	for _, part := range splitTokens(tokens, css.CommaToken) {
		sel := joinTokens(part)
		if sel == "" {
			last, ok := lastSignificant(part)
			if !ok {
				last = start
			}
			return nil, p.report(last, expectSelector, p.skipStatement())
		}
		selectors = append(selectors, sel)
	}

	rule, err := decl.NewStyleRule(selectors...)
	if err != nil {
		return nil, p.fail(expectSelector, p.skipStatement)
	}
	p.next()
	end, err := p.declarations(&rule.DeclarationList)
	if err != nil {
		return nil, err
	}
	rule.SetSourceLocation(location(start, end))
	return rule, nil
}

// declarations reads a declaration block after its opening brace and
// returns the closing brace.
func (p *parser) declarations(list *decl.DeclarationList) (Token, error) {
	for {
		p.skipWhitespace()
		t := p.peek()
		switch t.Type {
		case css.SemicolonToken:
			p.next()
		case css.RightBraceToken:
			return p.next(), nil
		case css.ErrorToken:
			return t, p.fail(expectRightBrace, noResync)
		case css.IdentToken, css.CustomPropertyNameToken:
			if err := p.declaration(list); err != nil {
				return t, err
			}
		default:
			if err := p.fail(expectProperty, p.skipStatement); err != nil {
				return t, err
			}
		}
	}
}

func (p *parser) declaration(list *decl.DeclarationList) error {
	prop := p.next()
	p.skipWhitespace()
	if p.peek().Type != css.ColonToken {
		return p.fail(expectColon, p.skipStatement)
	}
	p.next()

	var value []Token
	depth := 0
	for {
		t := p.peek()
		if t.Type == css.ErrorToken || depth == 0 && (t.Type == css.SemicolonToken || t.Type == css.RightBraceToken) {
			break
		}
		depth = nest(depth, t.Type)
		value = append(value, p.next())
	}

	value, important := splitImportant(value)
	text := joinTokens(value)
	if text == "" {
		return p.fail(expectValue, noResync)
	}
	d, err := decl.NewDeclaration(prop.Text, text, important)
	if err != nil {
		return p.fail(expectValue, noResync)
	}
	return list.AddDeclaration(d)
}

func (p *parser) importRule(start Token) (decl.Rule, error) {
	p.skipWhitespace()
	url, ok := p.importURL()
	if !ok {
		return nil, p.fail(expectImportURL, p.skipStatement)
	}

	set := media.NewSet()
	needMedium := false
	for {
		p.skipWhitespace()
		t := p.peek()
		if t.Type == css.SemicolonToken && !needMedium {
			break
		}
		if t.Type != css.IdentToken {
			if needMedium {
				return nil, p.fail(expectMedium, p.skipStatement)
			}
			return nil, p.fail(expectImportTail, p.skipStatement)
		}
		m, ok := media.ParseMedium(t.Text)
		if !ok || set.Add(m) != nil {
			return nil, p.fail(expectMedium, p.skipStatement)
		}
		p.next()

		p.skipWhitespace()
		switch p.peek().Type {
		case css.CommaToken:
			p.next()
			needMedium = true
		case css.SemicolonToken:
			needMedium = false
		default:
			return nil, p.fail(expectSemicolon, p.skipStatement)
		}
	}
	end := p.next()

	rule, err := decl.NewImportRule(url, set)
	if err != nil {
		return nil, p.report(start, expectImportURL, &end)
	}
	rule.SetSourceLocation(location(start, end))
	p.log.Debug("Parsed @import", zap.String("url", url), zap.String("media", set.String()))
	return rule, nil
}

// importURL reads url(x), url("x") or "x".
func (p *parser) importURL() (string, bool) {
	t := p.peek()
	switch t.Type {
	case css.URLToken:
		p.next()
		s := strings.TrimSpace(t.Text)
		s = s[strings.IndexByte(s, '(')+1:]
		s = strings.TrimSuffix(s, ")")
		return unquote(strings.TrimSpace(s)), true
	case css.StringToken:
		p.next()
		return unquote(t.Text), true
	case css.FunctionToken:
		if !strings.EqualFold(t.Text, "url(") {
			return "", false
		}
		p.next()
		p.skipWhitespace()
		s := p.peek()
		if s.Type != css.StringToken {
			return "", false
		}
		p.next()
		p.skipWhitespace()
		if p.peek().Type != css.RightParenthesisToken {
			return "", false
		}
		p.next()
		return unquote(s.Text), true
	}
	return "", false
}

func (p *parser) mediaRule(start Token) (decl.Rule, error) {
	tokens, ok := p.prelude()
	if !ok {
		return nil, p.fail(expectLeftBrace, p.skipTerminator)
	}

	var queries []*decl.MediaQuery
	for _, part := range splitTokens(tokens, css.CommaToken) {
		q, at := parseMediaQuery(part)
		if q == nil {
			last, ok := lastSignificant(part[:at])
			if !ok {
				last = start
			}
			return nil, p.report(last, expectMediaQuery, p.skipStatement())
		}
		queries = append(queries, q)
	}

	rule, err := decl.NewMediaRule(queries...)
	if err != nil {
		return nil, p.report(start, expectMediaQuery, p.skipStatement())
	}
	p.next()
	end, err := p.ruleList(rule.AddRule)
	if err != nil {
		return nil, err
	}
	rule.SetSourceLocation(location(start, end))
	p.log.Debug("Parsed @media block", zap.String("query", rule.QueryText(writerDefaults)), zap.Int("rules", rule.RuleCount()))
	return rule, nil
}

func (p *parser) supportsRule(start Token) (decl.Rule, error) {
	tokens, ok := p.prelude()
	if !ok {
		return nil, p.fail(expectLeftBrace, p.skipTerminator)
	}

	cp := &conditionParser{tokens: tokens}
	members, ok := cp.condition()
	if !ok {
		last, found := lastSignificant(tokens[:cp.pos])
		if !found {
			last = start
		}
		return nil, p.report(last, expectCondition, p.skipStatement())
	}

	rule := decl.NewSupportsRule()
	for _, m := range members {
		if err := rule.AddConditionMember(m); err != nil {
			return nil, err
		}
	}
	p.next()
	end, err := p.ruleList(rule.AddRule)
	if err != nil {
		return nil, err
	}
	rule.SetSourceLocation(location(start, end))
	p.log.Debug("Parsed @supports block", zap.Int("conditions", rule.ConditionMemberCount()), zap.Int("rules", rule.RuleCount()))
	return rule, nil
}

func (p *parser) fontFaceRule(start Token) (decl.Rule, error) {
	p.skipWhitespace()
	if p.peek().Type != css.LeftBraceToken {
		return nil, p.fail(expectLeftBrace, p.skipStatement)
	}
	p.next()

	rule := decl.NewFontFaceRule()
	end, err := p.declarations(&rule.DeclarationList)
	if err != nil {
		return nil, err
	}
	rule.SetSourceLocation(location(start, end))
	p.log.Debug("Parsed @font-face", zap.Int("declarations", rule.DeclarationCount()))
	return rule, nil
}

func location(start, end Token) *decl.SourceLocation {
	return &decl.SourceLocation{
		FirstLine:   start.Line,
		FirstColumn: start.Column,
		LastLine:    end.Line,
		LastColumn:  end.endColumn(),
	}
}
