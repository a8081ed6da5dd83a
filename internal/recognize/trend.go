package recognize

import (
	"regexp"
	"strings"

	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// timeSpanRe anchors the DDhh/DDhh trend-validity shape before the fields
// are handed to quantity.MetafTimeFromDDHH.
var timeSpanRe = regexp.MustCompile(`^\d{4}/\d{4}$`)

// recognizeTrend accepts the four trend-envelope shapes a single token can
// carry: a bare type keyword, a PROB qualifier, a DDhh/DDhh validity span,
// or an FM/TL/AT anchor. Each shape yields an "incomplete" trend group that
// the combiner (internal/combine) fuses into a complete envelope.
func recognizeTrend(token string, section syntax.Section) (group.Group, bool) {
	// The bare DDhh/DDhh validity span doubles as the header-level TIME_SPAN
	// shape the syntax machine uses to disambiguate a bare-location report
	// as TAF, so it must be recognizable in Header too, not just the body.
	if timeSpanRe.MatchString(token) {
		fromStr, tillStr := token[:4], token[5:]
		from, ok1 := quantity.MetafTimeFromDDHH(fromStr)
		till, ok2 := quantity.MetafTimeFromDDHH(tillStr)
		if ok1 && ok2 {
			return group.Group{
				Kind: group.Trend, TrendType: group.TrendTimeSpanOnly,
				TimeFrom: from, HaveTimeFrom: true,
				TimeTill: till, HaveTimeTill: true,
			}, true
		}
		return group.Group{}, false
	}

	if section != syntax.METARBody && section != syntax.TAFBody {
		return group.Group{}, false
	}

	switch token {
	case "BECMG":
		return group.Group{Kind: group.Trend, TrendType: group.TrendBecoming}, true
	case "TEMPO":
		return group.Group{Kind: group.Trend, TrendType: group.TrendTemporary}, true
	case "INTER":
		return group.Group{Kind: group.Trend, TrendType: group.TrendInterrupt}, true
	case "NOSIG":
		return group.Group{Kind: group.Trend, TrendType: group.TrendNotSignificant}, true
	}

	if strings.HasPrefix(token, "PROB") && len(token) == 6 {
		switch token[4:] {
		case "30":
			return group.Group{Kind: group.Trend, TrendType: group.TrendProbabilityOnly, Probability: group.Probability30}, true
		case "40":
			return group.Group{Kind: group.Trend, TrendType: group.TrendProbabilityOnly, Probability: group.Probability40}, true
		}
		return group.Group{}, false
	}

	if strings.HasPrefix(token, "FM") && len(token) == 8 {
		t, ok := quantity.MetafTimeFromDDHHMM(token[2:])
		if !ok {
			return group.Group{}, false
		}
		return group.Group{Kind: group.Trend, TrendType: group.TrendTimeOnly, TimeFrom: t, HaveTimeFrom: true}, true
	}
	if strings.HasPrefix(token, "TL") && len(token) == 6 {
		t, ok := quantity.MetafTimeFromHHMM(token[2:])
		if !ok {
			return group.Group{}, false
		}
		return group.Group{Kind: group.Trend, TrendType: group.TrendTimeOnly, TimeTill: t, HaveTimeTill: true}, true
	}
	if strings.HasPrefix(token, "AT") && len(token) == 6 {
		t, ok := quantity.MetafTimeFromHHMM(token[2:])
		if !ok {
			return group.Group{}, false
		}
		return group.Group{Kind: group.Trend, TrendType: group.TrendTimeOnly, TimeAt: t, HaveTimeAt: true}, true
	}

	return group.Group{}, false
}
