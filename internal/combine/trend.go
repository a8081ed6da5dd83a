package combine

import "metaf/internal/group"

func isTrendType(t group.TrendType) bool {
	switch t {
	case group.TrendBecoming, group.TrendTemporary, group.TrendInterrupt, group.TrendNotSignificant:
		return true
	default:
		return false
	}
}

func isTimeBearing(t group.TrendType) bool {
	return t == group.TrendTimeSpanOnly || t == group.TrendTimeOnly
}

// combineTrend implements the trend-assembly rules: probability +
// (TEMPO|INTER) promotes the trend with a probability; probability + a bare
// time span yields a TIME_SPAN trend with probability; a trend-type absorbs
// a following time-span/time-only group; two incomplete time-only groups
// merge their time fields.
func combineTrend(prev, next group.Group) (group.Group, bool) {
	switch {
	case prev.TrendType == group.TrendProbabilityOnly:
		if next.TrendType == group.TrendTemporary || next.TrendType == group.TrendInterrupt || next.TrendType == group.TrendTimeSpanOnly {
			merged := next
			merged.Probability = prev.Probability
			return merged, true
		}
		return group.Group{}, false

	case isTrendType(prev.TrendType):
		if isTimeBearing(next.TrendType) {
			return mergeTimeFields(prev, next)
		}
		return group.Group{}, false

	case isTimeBearing(prev.TrendType):
		if next.TrendType == group.TrendTimeOnly {
			return mergeTimeFields(prev, next)
		}
		return group.Group{}, false
	}
	return group.Group{}, false
}

// mergeTimeFields folds src's time fields into dst, honoring the merge
// rules: FROM and TILL may each be set once; AT is mutually exclusive with
// both. A conflicting or empty merge refuses.
func mergeTimeFields(dst, src group.Group) (group.Group, bool) {
	result := dst

	if src.HaveTimeAt {
		if dst.HaveTimeFrom || dst.HaveTimeTill || dst.HaveTimeAt {
			return group.Group{}, false
		}
		result.TimeAt = src.TimeAt
		result.HaveTimeAt = true
		return result, true
	}
	if dst.HaveTimeAt {
		return group.Group{}, false
	}

	merged := false
	if src.HaveTimeFrom {
		if dst.HaveTimeFrom {
			return group.Group{}, false
		}
		result.TimeFrom = src.TimeFrom
		result.HaveTimeFrom = true
		merged = true
	}
	if src.HaveTimeTill {
		if dst.HaveTimeTill {
			return group.Group{}, false
		}
		result.TimeTill = src.TimeTill
		result.HaveTimeTill = true
		merged = true
	}
	if !merged {
		return group.Group{}, false
	}
	return result, true
}
