package reader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// ErrAborted marks an error returned by a handler that chose to stop the read.
var ErrAborted = errors.New("css read aborted")

// ErrorKind distinguishes the two recoverable faults of a read.
type ErrorKind int

const (
	// TokenMismatch means the grammar expected other tokens than it found.
	TokenMismatch ErrorKind = iota + 1
	// UnexpectedRule means a rule appeared where it is not allowed.
	UnexpectedRule
)

func (k ErrorKind) String() string {
	switch k {
	case TokenMismatch:
		return "token-mismatch"
	case UnexpectedRule:
		return "unexpected-rule"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is one recorded fault. It is immutable: the constructors copy
// their inputs and every accessor returns a copy.
type ParseError struct {
	kind        ErrorKind
	token       Token
	expected    [][]css.TokenType
	names       TokenNames
	lastSkipped *Token
	rule        string
	message     string
}

// NewTokenError records a token mismatch.
func NewTokenError(lastValid Token, expected [][]css.TokenType, names TokenNames, lastSkipped *Token) *ParseError {
	pe := &ParseError{
		kind:     TokenMismatch,
		token:    lastValid,
		expected: cloneSequences(expected),
		names:    names.Clone(),
	}
	if lastSkipped != nil {
		skipped := *lastSkipped
		pe.lastSkipped = &skipped
	}
	return pe
}

// NewUnexpectedRuleError records a misplaced or unsupported rule.
func NewUnexpectedRuleError(current Token, rule, message string) *ParseError {
	return &ParseError{kind: UnexpectedRule, token: current, rule: rule, message: message}
}

// Kind tells token mismatches from unexpected rules.
func (e *ParseError) Kind() ErrorKind { return e.kind }

// Token returns the last valid token of a mismatch, or the current token
// of an unexpected rule.
func (e *ParseError) Token() Token { return e.token }

// ExpectedSequences returns a copy of the token sequences that would have matched.
func (e *ParseError) ExpectedSequences() [][]css.TokenType { return cloneSequences(e.expected) }

// TokenNames returns a copy of the names used to describe expected tokens.
func (e *ParseError) TokenNames() TokenNames { return e.names.Clone() }

// LastSkippedToken returns the token at which the reader resynchronized.
func (e *ParseError) LastSkippedToken() (Token, bool) {
	if e.lastSkipped == nil {
		return Token{}, false
	}
	return *e.lastSkipped, true
}

// Rule is the rejected at-rule name, empty for token mismatches.
func (e *ParseError) Rule() string { return e.rule }

// Message explains why the rule was rejected.
func (e *ParseError) Message() string { return e.message }

// Line is the source line the fault is reported at.
func (e *ParseError) Line() int { return e.token.Line }

// Column is the source column the fault is reported at.
func (e *ParseError) Column() int { return e.token.Column }

// Expected describes the expected alternatives, e.g. "':' or '{'".
func (e *ParseError) Expected() string {
	alts := make([]string, 0, len(e.expected))
	for _, seq := range e.expected {
		parts := make([]string, 0, len(seq))
		for _, tt := range seq {
			parts = append(parts, e.names.Name(tt))
		}
		alts = append(alts, strings.Join(parts, " "))
	}
	switch len(alts) {
	case 0:
		return "nothing"
	case 1:
		return alts[0]
	}
	return strings.Join(alts[:len(alts)-1], ", ") + " or " + alts[len(alts)-1]
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.token.Line, e.token.Column, e.Description())
}

// Description is the message of Error without the position prefix.
func (e *ParseError) Description() string {
	if e.kind == UnexpectedRule {
		return fmt.Sprintf("unexpected rule %s: %s", e.rule, e.message)
	}
	msg := fmt.Sprintf("expected %s after %s", e.Expected(), e.token.Describe(e.names))
	if e.lastSkipped != nil {
		msg += fmt.Sprintf(", skipped to %d:%d", e.lastSkipped.Line, e.lastSkipped.Column)
	}
	return msg
}

func cloneSequences(in [][]css.TokenType) [][]css.TokenType {
	if in == nil {
		return nil
	}
	out := make([][]css.TokenType, len(in))
	for i, seq := range in {
		out[i] = append([]css.TokenType(nil), seq...)
	}
	return out
}
