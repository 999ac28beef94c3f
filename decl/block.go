package decl

import (
	"strings"

	"github.com/yacobolo/cssdom/writer"
)

// renderRuleBlock writes prelude followed by a braced block of nested rules.
//
// Children that render to "" are skipped and do not count for separators.
// An empty rules slice yields an empty pair of braces; whether the whole
// block should vanish instead is the caller's decision, made before any
// child is rendered.
func renderRuleBlock(prelude string, rules []Rule, s writer.Settings, level int) (string, error) {
	opt := s.OptimizedOutput

	var sb strings.Builder
	sb.WriteString(prelude)

	if len(rules) == 0 {
		if opt {
			sb.WriteString("{}")
		} else {
			sb.WriteString(" {}\n")
		}
		return sb.String(), nil
	}

	if opt {
		sb.WriteByte('{')
	} else {
		sb.WriteString(" {\n")
	}

	first := true
	for _, rule := range rules {
		text, err := rule.Render(s, level+1)
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}
		if first {
			first = false
		} else if !opt {
			sb.WriteByte('\n')
		}
		if !opt {
			sb.WriteString(s.Indent(level + 1))
		}
		sb.WriteString(text)
	}

	if !opt {
		sb.WriteString(s.Indent(level))
	}
	sb.WriteByte('}')
	if !opt {
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
