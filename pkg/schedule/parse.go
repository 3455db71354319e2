package schedule

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of parsing a schedule string. Week is always a
// complete seven-day schedule. Skipped lists the segments that were dropped
// because they could not be understood; callers that only want the schedule
// can ignore it.
type Result struct {
	Week    WeekSchedule
	Skipped []string
}

// Parse converts a free-text schedule string into a WeekSchedule, dropping
// anything it cannot understand. It never fails: empty, blank or fully
// malformed input yields the all-closed default week.
func Parse(text string) WeekSchedule {
	return ParseText(text).Week
}

// ParseText is Parse with diagnostics for the segments that were dropped.
//
// Each comma-separated segment has the form "<days>: <start> - <end>" where
// <days> is a single three-letter day abbreviation or a forward range like
// "Mon-Fri". Ranges never wrap around the week end: "Sat-Mon" resolves to no
// days. Later segments overwrite earlier ones for the same day. Start and end
// times are stored verbatim.
func ParseText(text string) (res Result) {
	res.Week = NewWeekSchedule()

	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Str("text", text).Msg("schedule parse failed, using closed defaults")
			res = Result{Week: NewWeekSchedule()}
		}
	}()

	if strings.TrimSpace(text) == "" {
		return res
	}

	for _, segment := range strings.Split(text, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		dayPart, timePart, ok := strings.Cut(segment, ":")
		if !ok {
			res.Skipped = append(res.Skipped, segment)
			continue
		}

		start, end, ok := splitTimeRange(timePart)
		if !ok {
			res.Skipped = append(res.Skipped, segment)
			continue
		}

		days := resolveDays(dayPart)
		if len(days) == 0 {
			res.Skipped = append(res.Skipped, segment)
			continue
		}

		for _, d := range days {
			res.Week[d] = DaySchedule{Open: true, Start: start, End: end}
		}
	}

	return res
}

// splitTimeRange splits "9:00 AM - 5:00 PM" on its hyphen into trimmed start
// and end strings.
func splitTimeRange(s string) (start, end string, ok bool) {
	start, end, ok = strings.Cut(s, "-")
	if !ok {
		return "", "", false
	}
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return "", "", false
	}
	return start, end, true
}

// resolveDays expands a day token ("Mon" or "Mon-Fri") into concrete
// weekdays. Unresolvable abbreviations and backward ranges yield nil.
func resolveDays(s string) []Weekday {
	s = strings.TrimSpace(s)

	if first, last, isRange := strings.Cut(s, "-"); isRange {
		from, okFrom := dayFromAbbrev(first)
		to, okTo := dayFromAbbrev(last)
		if !okFrom || !okTo {
			return nil
		}
		var days []Weekday
		for d := from; d <= to; d++ {
			days = append(days, d)
		}
		return days
	}

	d, ok := dayFromAbbrev(s)
	if !ok {
		return nil
	}
	return []Weekday{d}
}
