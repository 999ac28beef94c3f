package reader

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

func ident(text string, line, col int) Token {
	return Token{Type: css.IdentToken, Text: text, Line: line, Column: col}
}

func TestCollector_Empty(t *testing.T) {
	c := NewCollector(nil)
	assert.False(t, c.HasErrors())
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.Errors())
	assert.NoError(t, c.Err())
}

func TestCollector_Records(t *testing.T) {
	c := NewCollector(nil)
	require.NoError(t, c.TokenError(ident("color", 1, 5), expectColon, tokenNames, nil))
	require.NoError(t, c.UnexpectedRule(Token{Type: css.AtKeywordToken, Text: "@page", Line: 2, Column: 1}, "@page", "unsupported at-rule"))

	require.Equal(t, 2, c.Count())
	errs := c.Errors()
	assert.Equal(t, TokenMismatch, errs[0].Kind())
	assert.Equal(t, UnexpectedRule, errs[1].Kind())
	assert.Equal(t, "@page", errs[1].Rule())
	assert.Equal(t, "unsupported at-rule", errs[1].Message())
	assert.Equal(t, "2:1: unexpected rule @page: unsupported at-rule", errs[1].Error())

	combined := c.Err()
	require.Error(t, combined)
	assert.Len(t, multierr.Errors(combined), 2)
}

func TestCollector_SnapshotIsIndependent(t *testing.T) {
	c := NewCollector(nil)
	require.NoError(t, c.TokenError(ident("a", 1, 1), expectColon, tokenNames, nil))

	snapshot := c.Errors()
	for i := 0; i < 5; i++ {
		require.NoError(t, c.TokenError(ident("b", 2, i+1), expectColon, tokenNames, nil))
	}

	assert.Len(t, snapshot, 1)
	assert.Equal(t, 6, c.Count())

	snapshot[0] = nil
	assert.NotNil(t, c.Errors()[0])
}

type recordingHandler struct {
	c      *Collector
	counts []int
	err    error
}

func (h *recordingHandler) TokenError(Token, [][]css.TokenType, TokenNames, *Token) error {
	h.counts = append(h.counts, h.c.Count())
	return h.err
}

func (h *recordingHandler) UnexpectedRule(Token, string, string) error {
	h.counts = append(h.counts, h.c.Count())
	return h.err
}

func TestCollector_ForwardsAfterRecording(t *testing.T) {
	next := &recordingHandler{}
	c := NewCollector(next)
	next.c = c

	require.NoError(t, c.TokenError(ident("a", 1, 1), expectColon, tokenNames, nil))
	require.NoError(t, c.UnexpectedRule(ident("b", 1, 1), "@x", "m"))
	assert.Equal(t, []int{1, 2}, next.counts)
}

func TestCollector_ForwardingErrorPropagates(t *testing.T) {
	stop := errors.New("stop")
	next := &recordingHandler{err: stop}
	c := NewCollector(next)
	next.c = c

	err := c.TokenError(ident("a", 1, 1), expectColon, tokenNames, nil)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, c.Count(), "the fault is recorded before forwarding")
}

func TestCollector_Concurrent(t *testing.T) {
	const producers, perProducer = 16, 200

	c := NewCollector(nil)
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for k := 0; k < perProducer; k++ {
				tok := ident(fmt.Sprintf("p%d-%d", p, k), p+1, k+1)
				_ = c.TokenError(tok, expectColon, tokenNames, nil)
				_ = c.HasErrors()
			}
		}(p)
	}
	wg.Wait()

	require.Equal(t, producers*perProducer, c.Count())
	seen := make(map[string]bool, producers*perProducer)
	for _, pe := range c.Errors() {
		seen[pe.Token().Text] = true
	}
	assert.Len(t, seen, producers*perProducer)
}

func TestParseError_CopiesInputs(t *testing.T) {
	expected := [][]css.TokenType{{css.ColonToken}, {css.LeftBraceToken}}
	names := TokenNames{css.ColonToken: "colon", css.LeftBraceToken: "brace", css.IdentToken: "identifier"}
	skipped := Token{Type: css.SemicolonToken, Text: ";", Line: 1, Column: 9}

	pe := NewTokenError(ident("a", 1, 1), expected, names, &skipped)

	expected[0][0] = css.CommaToken
	names[css.ColonToken] = "changed"
	skipped.Text = "changed"

	assert.Equal(t, [][]css.TokenType{{css.ColonToken}, {css.LeftBraceToken}}, pe.ExpectedSequences())
	assert.Equal(t, "colon", pe.TokenNames()[css.ColonToken])
	got, ok := pe.LastSkippedToken()
	require.True(t, ok)
	assert.Equal(t, ";", got.Text)

	view := pe.ExpectedSequences()
	view[0][0] = css.CommaToken
	assert.Equal(t, css.ColonToken, pe.ExpectedSequences()[0][0])

	assert.Equal(t, "colon or brace", pe.Expected())
	assert.Equal(t, `1:1: expected colon or brace after identifier "a", skipped to 1:9`, pe.Error())
}
