package decl

import (
	"fmt"
	"strings"

	"github.com/yacobolo/cssdom/media"
	"github.com/yacobolo/cssdom/writer"
)

// ImportRule is an @import of another stylesheet, optionally restricted to
// a set of media.
type ImportRule struct {
	located
	url   string
	media *media.Set
}

// NewImportRule returns an import of url for the given media. The set is
// copied, so later changes to m do not affect the rule.
func NewImportRule(url string, m *media.Set) (*ImportRule, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("import without url: %w", ErrInvalidArgument)
	}
	return &ImportRule{url: url, media: media.CreateOnDemand(m)}, nil
}

// URL is the imported location without url() or quotes.
func (r *ImportRule) URL() string { return r.url }

// Media returns the rule's own set. Mutating it changes the rule.
func (r *ImportRule) Media() *media.Set { return r.media }

// MinimumVersion implements Rule.
func (r *ImportRule) MinimumVersion() writer.Version {
	return writer.CSS10
}

// Render implements Rule.
func (r *ImportRule) Render(s writer.Settings, _ int) (string, error) {
	if err := s.CheckVersion(r); err != nil {
		return "", err
	}
	if !s.WriteImportRules {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("@import url(")
	if s.QuoteURLs {
		sb.WriteString(quoteURL(r.url))
	} else {
		sb.WriteString(r.url)
	}
	sb.WriteByte(')')
	if !r.media.IsEmpty() {
		sb.WriteByte(' ')
		if s.OptimizedOutput {
			sb.WriteString(r.media.Join(","))
		} else {
			sb.WriteString(r.media.String())
		}
	}
	sb.WriteByte(';')
	if !s.OptimizedOutput {
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Equal compares url and media.
func (r *ImportRule) Equal(other Rule) bool {
	o, ok := other.(*ImportRule)
	if !ok || o == nil {
		return false
	}
	return r.url == o.url && r.media.Equal(o.media)
}

func quoteURL(url string) string {
	url = strings.ReplaceAll(url, `\`, `\\`)
	url = strings.ReplaceAll(url, `"`, `\"`)
	return `"` + url + `"`
}
