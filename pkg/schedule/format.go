package schedule

import "strings"

// hourGroup collects open days sharing identical start/end strings.
type hourGroup struct {
	days  []Weekday
	start string
	end   string
}

// Format renders a WeekSchedule in the canonical text form. Open days with
// identical hours are grouped; a group of more than two calendar-contiguous
// days collapses to a "Mon-Fri" range, anything else is listed day by day.
// An all-closed week formats to the empty string.
func Format(w WeekSchedule) string {
	var groups []*hourGroup

	for _, d := range Weekdays() {
		ds := w[d]
		if !ds.Open {
			continue
		}
		var g *hourGroup
		for _, candidate := range groups {
			if candidate.start == ds.Start && candidate.end == ds.End {
				g = candidate
				break
			}
		}
		if g == nil {
			g = &hourGroup{start: ds.Start, end: ds.End}
			groups = append(groups, g)
		}
		g.days = append(g.days, d)
	}

	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, g.render())
	}
	return strings.Join(parts, ", ")
}

func (g *hourGroup) render() string {
	return g.renderDays() + ": " + g.start + " - " + g.end
}

func (g *hourGroup) renderDays() string {
	first := g.days[0]
	last := g.days[len(g.days)-1]
	if len(g.days) > 2 && int(first)+len(g.days)-1 == int(last) {
		return first.Abbrev() + "-" + last.Abbrev()
	}
	abbrevs := make([]string, len(g.days))
	for i, d := range g.days {
		abbrevs[i] = d.Abbrev()
	}
	return strings.Join(abbrevs, ", ")
}
