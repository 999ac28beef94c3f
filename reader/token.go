package reader

import (
	"fmt"
	"maps"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Token is a lexer token with its position in the source. Lines and columns
// are 1-based and columns count runes.
type Token struct {
	Type   css.TokenType
	Text   string
	Line   int
	Column int
}

// endColumn is the column of the last rune of the token.
func (t Token) endColumn() int {
	n := utf8.RuneCountInString(t.Text)
	if n == 0 {
		return t.Column
	}
	return t.Column + n - 1
}

// Describe renders the token for diagnostics using names.
func (t Token) Describe(names TokenNames) string {
	if t.Type == css.ErrorToken {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", names.Name(t.Type), t.Text)
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.Type, t.Text)
}

// TokenNames maps token types to the names shown to users.
type TokenNames map[css.TokenType]string

// Name returns the display name of tt, falling back to the lexer's name.
func (n TokenNames) Name(tt css.TokenType) string {
	if name, ok := n[tt]; ok {
		return name
	}
	return tt.String()
}

// Clone returns an independent copy.
func (n TokenNames) Clone() TokenNames {
	return maps.Clone(n)
}

var tokenNames = TokenNames{
	css.IdentToken:              "identifier",
	css.CustomPropertyNameToken: "custom property",
	css.FunctionToken:           "function",
	css.AtKeywordToken:          "at-keyword",
	css.HashToken:               "hash",
	css.StringToken:             "string",
	css.BadStringToken:          "unterminated string",
	css.URLToken:                "url",
	css.BadURLToken:             "malformed url",
	css.DelimToken:              "delimiter",
	css.NumberToken:             "number",
	css.PercentageToken:         "percentage",
	css.DimensionToken:          "dimension",
	css.ColonToken:              "':'",
	css.SemicolonToken:          "';'",
	css.CommaToken:              "','",
	css.LeftBraceToken:          "'{'",
	css.RightBraceToken:         "'}'",
	css.LeftParenthesisToken:    "'('",
	css.RightParenthesisToken:   "')'",
	css.LeftBracketToken:        "'['",
	css.RightBracketToken:       "']'",
	css.ErrorToken:              "end of input",
}

// DefaultTokenNames returns a copy of the names the reader reports with.
func DefaultTokenNames() TokenNames {
	return tokenNames.Clone()
}

// tokenize lexes text into positioned tokens. Comments are dropped. The
// slice always ends with an ErrorToken marking the end of input.
func tokenize(text string) []Token {
	lexer := css.NewLexer(parse.NewInputString(text))
	line, col := 1, 1

	var tokens []Token
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			tokens = append(tokens, Token{Type: css.ErrorToken, Line: line, Column: col})
			return tokens
		}
		tok := Token{Type: tt, Text: string(data), Line: line, Column: col}
		line, col = advance(tok.Text, line, col)
		if tt == css.CommentToken {
			continue
		}
		tokens = append(tokens, tok)
	}
}

func advance(text string, line, col int) (int, int) {
	for _, r := range text {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
