package metaf

import (
	"strings"

	"metaf/internal/combine"
	"metaf/internal/group"
	"metaf/internal/recognize"
	"metaf/internal/syntax"
)

// Parse parses a single report (METAR or TAF) and returns its syntax tree.
func Parse(report string) Result {
	ext := parse(report)
	groups := make([]group.Group, len(ext.Groups))
	for i, gi := range ext.Groups {
		groups[i] = gi.Group
	}
	return Result{Kind: ext.Kind, Error: ext.Error, Groups: groups}
}

// ParseExtended is Parse but additionally records, for every group, which
// report section it was recognized in and the raw source substring that
// combined into it.
func ParseExtended(report string) ResultExtended {
	return parse(report)
}

// maxReparseAttempts bounds the reparse loop; the state machine only ever
// sets the reparse flag once per token (the TIME_SPAN disambiguation), so
// this is a defensive cap rather than an expected iteration count.
const maxReparseAttempts = 4

func parse(report string) ResultExtended {
	m := syntax.New()
	var infos []GroupInfo

	for _, tok := range tokenize(report) {
		var g group.Group
		var section syntax.Section
		for attempt := 0; attempt < maxReparseAttempts; attempt++ {
			section = m.Section()
			g = recognize.Dispatch(tok, section)
			m.Transition(g.Category())
			if !m.IsReparseRequired() {
				break
			}
			m.ClearReparse()
		}

		if len(infos) > 0 {
			if merged, ok := combine.Combine(infos[len(infos)-1].Group, g); ok {
				infos[len(infos)-1].Group = merged
				infos[len(infos)-1].Raw += " " + tok
				continue
			}
		}
		infos = append(infos, GroupInfo{Group: g, Section: section, Raw: tok})
	}

	errKind := m.FinalTransition()
	return ResultExtended{Kind: m.Kind(), Error: errKind, Groups: infos}
}

// tokenize splits on whitespace and honors a trailing "=" report
// terminator: once found (anywhere in a token), that token is truncated to
// what precedes it and everything after is dropped.
func tokenize(report string) []string {
	fields := strings.Fields(report)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if idx := strings.IndexByte(f, '='); idx >= 0 {
			if idx > 0 {
				tokens = append(tokens, f[:idx])
			}
			break
		}
		tokens = append(tokens, f)
	}
	return tokens
}
