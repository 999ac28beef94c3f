package reader

import (
	"sync"

	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

// Collector is an ErrorHandler that records every fault. It is safe for
// concurrent use. Faults are forwarded to an optional next handler after
// they are recorded, and that handler's error is returned to the reporter.
type Collector struct {
	mu     sync.RWMutex
	errors []*ParseError
	next   ErrorHandler
}

// NewCollector returns a collector forwarding to next, which may be nil.
func NewCollector(next ErrorHandler) *Collector {
	return &Collector{next: next}
}

// TokenError records a token mismatch, then forwards it to the next handler.
func (c *Collector) TokenError(lastValid Token, expected [][]css.TokenType, names TokenNames, lastSkipped *Token) error {
	c.append(NewTokenError(lastValid, expected, names, lastSkipped))
	if c.next == nil {
		return nil
	}
	return c.next.TokenError(lastValid, expected, names, lastSkipped)
}

// UnexpectedRule records a rejected rule, then forwards it to the next handler.
func (c *Collector) UnexpectedRule(current Token, rule, message string) error {
	c.append(NewUnexpectedRuleError(current, rule, message))
	if c.next == nil {
		return nil
	}
	return c.next.UnexpectedRule(current, rule, message)
}

func (c *Collector) append(pe *ParseError) {
	c.mu.Lock()
	c.errors = append(c.errors, pe)
	c.mu.Unlock()
}

// HasErrors reports whether anything was recorded.
func (c *Collector) HasErrors() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.errors) > 0
}

// Count returns the number of recorded faults.
func (c *Collector) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.errors)
}

// Errors returns a snapshot of the recorded faults in report order. Later
// reports do not change a snapshot already taken.
func (c *Collector) Errors() []*ParseError {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*ParseError, len(c.errors))
	copy(out, c.errors)
	return out
}

// Err combines every recorded fault into one error, or returns nil.
func (c *Collector) Err() error {
	var err error
	for _, pe := range c.Errors() {
		err = multierr.Append(err, pe)
	}
	return err
}
