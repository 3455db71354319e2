// Package schedule implements the canonical business-hours text format used
// by seller profiles: comma-separated groups of "<days>: <start> - <end>",
// e.g. "Mon-Fri: 9:00 AM - 5:00 PM, Sat: 10:00 AM - 2:00 PM".
package schedule

import (
	"strings"
	"time"
)

// Weekday identifies a day of the week, ordered Monday through Sunday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
var dayAbbrevs = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// String returns the full English day name.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayNames[d]
}

// Abbrev returns the three-letter abbreviation used by the text format.
func (d Weekday) Abbrev() string {
	if d < Monday || d > Sunday {
		return ""
	}
	return dayAbbrevs[d]
}

// Weekdays returns all days in calendar order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// dayFromAbbrev resolves a three-letter abbreviation, case-insensitively.
func dayFromAbbrev(s string) (Weekday, bool) {
	s = strings.TrimSpace(s)
	for i, abbr := range dayAbbrevs {
		if strings.EqualFold(s, abbr) {
			return Weekday(i), true
		}
	}
	return 0, false
}

// Placeholder hours assigned to closed days so the editor always has a
// sensible range to show when a day is toggled open.
const (
	DefaultStart = "9:00 AM"
	DefaultEnd   = "5:00 PM"
)

// DaySchedule is the open/closed state and hours for a single day. Start and
// End are stored verbatim as "h:mm AM/PM" labels; the parser does not check
// them against the label palette, and nothing enforces Start < End.
type DaySchedule struct {
	Open  bool   `json:"open"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekSchedule holds exactly one DaySchedule per weekday, indexed by Weekday.
type WeekSchedule [7]DaySchedule

// NewWeekSchedule returns the all-closed default week with placeholder hours.
func NewWeekSchedule() WeekSchedule {
	var w WeekSchedule
	for i := range w {
		w[i] = DaySchedule{Open: false, Start: DefaultStart, End: DefaultEnd}
	}
	return w
}

// CopyToNext copies day d's schedule onto the following day. Sunday copies
// onto Monday.
func (w *WeekSchedule) CopyToNext(d Weekday) {
	next := (d + 1) % 7
	w[next] = w[d]
}

// CopyToAll copies day d's schedule onto every other day.
func (w *WeekSchedule) CopyToAll(d Weekday) {
	src := w[d]
	for i := range w {
		w[i] = src
	}
}

// timeLabelLayout parses the "h:mm AM/PM" labels used throughout.
const timeLabelLayout = "3:04 PM"

// TimeLabels returns the fixed half-hour label palette offered by hour
// editors, spanning 6:00 AM through 11:00 PM.
func TimeLabels() []string {
	labels := make([]string, 0, 35)
	t := time.Date(0, 1, 1, 6, 0, 0, 0, time.UTC)
	end := time.Date(0, 1, 1, 23, 0, 0, 0, time.UTC)
	for !t.After(end) {
		labels = append(labels, t.Format(timeLabelLayout))
		t = t.Add(30 * time.Minute)
	}
	return labels
}

// OpenAt reports whether the schedule is open at the given local time.
// Days whose labels do not parse, or whose end does not come after the
// start, never match; overnight ranges are not supported.
func (w WeekSchedule) OpenAt(at time.Time) bool {
	d := fromTimeWeekday(at.Weekday())
	ds := w[d]
	if !ds.Open {
		return false
	}
	start, err := time.Parse(timeLabelLayout, strings.TrimSpace(ds.Start))
	if err != nil {
		return false
	}
	end, err := time.Parse(timeLabelLayout, strings.TrimSpace(ds.End))
	if err != nil {
		return false
	}
	if !end.After(start) {
		return false
	}
	minute := at.Hour()*60 + at.Minute()
	return minute >= start.Hour()*60+start.Minute() && minute < end.Hour()*60+end.Minute()
}

// fromTimeWeekday converts time.Weekday (Sunday-based) to our Monday-based ordering.
func fromTimeWeekday(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(int(d) - 1)
}
