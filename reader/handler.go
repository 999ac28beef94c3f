package reader

import (
	"fmt"

	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// ErrorHandler receives the recoverable faults of a read. Returning a
// non-nil error stops the read; the reader hands that error back to its
// caller unchanged.
type ErrorHandler interface {
	TokenError(lastValid Token, expected [][]css.TokenType, names TokenNames, lastSkipped *Token) error
	UnexpectedRule(current Token, rule, message string) error
}

// DoNothingHandler ignores every fault.
type DoNothingHandler struct{}

func (DoNothingHandler) TokenError(Token, [][]css.TokenType, TokenNames, *Token) error { return nil }
func (DoNothingHandler) UnexpectedRule(Token, string, string) error                    { return nil }

// StrictHandler aborts the read at the first fault. The returned error
// matches ErrAborted and wraps the *ParseError.
type StrictHandler struct{}

func (StrictHandler) TokenError(lastValid Token, expected [][]css.TokenType, names TokenNames, lastSkipped *Token) error {
	return fmt.Errorf("%w: %w", ErrAborted, NewTokenError(lastValid, expected, names, lastSkipped))
}

func (StrictHandler) UnexpectedRule(current Token, rule, message string) error {
	return fmt.Errorf("%w: %w", ErrAborted, NewUnexpectedRuleError(current, rule, message))
}

// LoggingHandler writes every fault to a zap logger at warn level and
// never aborts.
type LoggingHandler struct {
	log *zap.Logger
}

// NewLoggingHandler logs faults with log. A nil logger discards them.
func NewLoggingHandler(log *zap.Logger) *LoggingHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingHandler{log: log.Named("css-errors")}
}

func (h *LoggingHandler) TokenError(lastValid Token, expected [][]css.TokenType, names TokenNames, lastSkipped *Token) error {
	pe := NewTokenError(lastValid, expected, names, lastSkipped)
	h.log.Warn("Unexpected token",
		zap.Int("line", pe.Line()),
		zap.Int("column", pe.Column()),
		zap.String("after", lastValid.Describe(names)),
		zap.String("expected", pe.Expected()))
	return nil
}

func (h *LoggingHandler) UnexpectedRule(current Token, rule, message string) error {
	h.log.Warn("Unexpected rule",
		zap.Int("line", current.Line),
		zap.Int("column", current.Column),
		zap.String("rule", rule),
		zap.String("message", message))
	return nil
}
