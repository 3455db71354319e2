package schedule

import (
	"strings"
	"testing"
	"time"
)

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		w := Parse(input)
		for _, d := range Weekdays() {
			if w[d].Open {
				t.Errorf("Parse(%q): expected %s closed", input, d)
			}
			if w[d].Start != DefaultStart || w[d].End != DefaultEnd {
				t.Errorf("Parse(%q): %s got placeholder %s-%s, want %s-%s",
					input, d, w[d].Start, w[d].End, DefaultStart, DefaultEnd)
			}
		}
	}
}

func TestParseSingleDay(t *testing.T) {
	w := Parse("Mon: 8:00 AM - 2:00 PM")

	if !w[Monday].Open {
		t.Fatal("expected Monday open")
	}
	if w[Monday].Start != "8:00 AM" || w[Monday].End != "2:00 PM" {
		t.Errorf("Monday hours = %s-%s, want 8:00 AM-2:00 PM", w[Monday].Start, w[Monday].End)
	}
	for _, d := range Weekdays() {
		if d != Monday && w[d].Open {
			t.Errorf("expected %s closed", d)
		}
	}

	if got := Format(w); got != "Mon: 8:00 AM - 2:00 PM" {
		t.Errorf("round trip = %q, want %q", got, "Mon: 8:00 AM - 2:00 PM")
	}
}

func TestParseRangeExpansion(t *testing.T) {
	w := Parse("Mon-Fri: 9:00 AM - 5:00 PM")

	for d := Monday; d <= Friday; d++ {
		if !w[d].Open {
			t.Errorf("expected %s open", d)
		}
		if w[d].Start != "9:00 AM" || w[d].End != "5:00 PM" {
			t.Errorf("%s hours = %s-%s", d, w[d].Start, w[d].End)
		}
	}
	if w[Saturday].Open || w[Sunday].Open {
		t.Error("expected weekend closed")
	}
}

func TestParseCaseInsensitiveDays(t *testing.T) {
	w := Parse("mon-FRI: 9:00 AM - 5:00 PM, sAt: 10:00 AM - 4:00 PM")
	for d := Monday; d <= Saturday; d++ {
		if !w[d].Open {
			t.Errorf("expected %s open", d)
		}
	}
}

func TestParseLastWriteWins(t *testing.T) {
	w := Parse("Mon-Fri: 9:00 AM - 5:00 PM, Wed: 10:00 AM - 1:00 PM")

	if w[Wednesday].Start != "10:00 AM" || w[Wednesday].End != "1:00 PM" {
		t.Errorf("Wednesday = %s-%s, want the later segment's hours", w[Wednesday].Start, w[Wednesday].End)
	}
	for _, d := range []Weekday{Monday, Tuesday, Thursday, Friday} {
		if w[d].Start != "9:00 AM" || w[d].End != "5:00 PM" {
			t.Errorf("%s = %s-%s, want 9:00 AM-5:00 PM", d, w[d].Start, w[d].End)
		}
	}
}

func TestParseMalformedSegments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown day", "NotADay: 9:00 AM - 5:00 PM, Tue: 8:00 AM - 12:00 PM"},
		{"missing colon", "Mon 9:00 AM - 5:00 PM, Tue: 8:00 AM - 12:00 PM"},
		{"missing hyphen", "Mon: 9:00 AM 5:00 PM, Tue: 8:00 AM - 12:00 PM"},
		{"empty times", "Mon: - , Tue: 8:00 AM - 12:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Parse(tt.input)
			if !w[Tuesday].Open {
				t.Fatal("expected Tuesday open")
			}
			if w[Tuesday].Start != "8:00 AM" || w[Tuesday].End != "12:00 PM" {
				t.Errorf("Tuesday = %s-%s", w[Tuesday].Start, w[Tuesday].End)
			}
			for _, d := range Weekdays() {
				if d != Tuesday && w[d].Open {
					t.Errorf("expected %s closed", d)
				}
			}
		})
	}
}

func TestParseBackwardRangeResolvesNothing(t *testing.T) {
	w := Parse("Sat-Mon: 9:00 AM - 5:00 PM")
	for _, d := range Weekdays() {
		if w[d].Open {
			t.Errorf("expected %s closed, wrap-around ranges are unsupported", d)
		}
	}
}

func TestParseStoresTimesVerbatim(t *testing.T) {
	w := Parse("Mon: whenever - late")
	if !w[Monday].Open {
		t.Fatal("expected Monday open")
	}
	if w[Monday].Start != "whenever" || w[Monday].End != "late" {
		t.Errorf("Monday = %q-%q, times must not be validated", w[Monday].Start, w[Monday].End)
	}
}

func TestParseTextDiagnostics(t *testing.T) {
	res := ParseText("NotADay: 9:00 AM - 5:00 PM, Tue: 8:00 AM - 12:00 PM, garbage")
	if len(res.Skipped) != 2 {
		t.Fatalf("Skipped = %v, want 2 entries", res.Skipped)
	}
	if res.Skipped[0] != "NotADay: 9:00 AM - 5:00 PM" || res.Skipped[1] != "garbage" {
		t.Errorf("Skipped = %v", res.Skipped)
	}
	if !res.Week[Tuesday].Open {
		t.Error("expected Tuesday open despite skipped segments")
	}
}

func TestFormatAllClosed(t *testing.T) {
	if got := Format(NewWeekSchedule()); got != "" {
		t.Errorf("Format(all closed) = %q, want empty string", got)
	}
}

func TestFormatCollapsesContiguousRun(t *testing.T) {
	w := NewWeekSchedule()
	for d := Monday; d <= Friday; d++ {
		w[d] = DaySchedule{Open: true, Start: "9:00 AM", End: "5:00 PM"}
	}

	if got := Format(w); got != "Mon-Fri: 9:00 AM - 5:00 PM" {
		t.Errorf("Format = %q, want %q", got, "Mon-Fri: 9:00 AM - 5:00 PM")
	}
}

func TestFormatListsNonContiguousDays(t *testing.T) {
	w := NewWeekSchedule()
	w[Monday] = DaySchedule{Open: true, Start: "9:00 AM", End: "5:00 PM"}
	w[Wednesday] = DaySchedule{Open: true, Start: "9:00 AM", End: "5:00 PM"}

	if got := Format(w); got != "Mon, Wed: 9:00 AM - 5:00 PM" {
		t.Errorf("Format = %q, want %q", got, "Mon, Wed: 9:00 AM - 5:00 PM")
	}
}

func TestFormatTwoDayRunIsListed(t *testing.T) {
	w := NewWeekSchedule()
	w[Saturday] = DaySchedule{Open: true, Start: "10:00 AM", End: "4:00 PM"}
	w[Sunday] = DaySchedule{Open: true, Start: "10:00 AM", End: "4:00 PM"}

	// Only runs longer than two days collapse to a range.
	if got := Format(w); got != "Sat, Sun: 10:00 AM - 4:00 PM" {
		t.Errorf("Format = %q, want %q", got, "Sat, Sun: 10:00 AM - 4:00 PM")
	}
}

func TestFormatMultipleGroups(t *testing.T) {
	w := Parse("Mon-Fri: 9:00 AM - 5:00 PM, Sat-Sun: 10:00 AM - 4:00 PM")

	got := Format(w)
	want := "Mon-Fri: 9:00 AM - 5:00 PM, Sat, Sun: 10:00 AM - 4:00 PM"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestRoundTripIsStable(t *testing.T) {
	inputs := []string{
		"Mon: 8:00 AM - 2:00 PM",
		"Mon-Fri: 9:00 AM - 5:00 PM",
		"Mon-Fri: 9:00 AM - 5:00 PM, Sat: 10:00 AM - 4:00 PM",
	}
	for _, input := range inputs {
		once := Format(Parse(input))
		twice := Format(Parse(once))
		if once != twice {
			t.Errorf("round trip of %q unstable: %q then %q", input, once, twice)
		}
		if once != input {
			t.Errorf("canonical input %q reformatted as %q", input, once)
		}
	}
}

func TestParseDropsUnqualifiedListedDays(t *testing.T) {
	// Day lists like "Sat, Sun: ..." split on the segment comma, so only the
	// day carrying the hours survives a reparse. Known limitation of the
	// text format.
	w := Parse("Sat, Sun: 10:00 AM - 4:00 PM")
	if w[Saturday].Open {
		t.Error("expected Saturday dropped")
	}
	if !w[Sunday].Open {
		t.Error("expected Sunday open")
	}
}

func TestCopyToNext(t *testing.T) {
	w := NewWeekSchedule()
	w[Friday] = DaySchedule{Open: true, Start: "7:00 AM", End: "3:00 PM"}

	w.CopyToNext(Friday)
	if w[Saturday] != w[Friday] {
		t.Error("expected Saturday to match Friday")
	}

	w.CopyToNext(Sunday)
	if w[Monday] != w[Sunday] {
		t.Error("expected Sunday to copy onto Monday")
	}
}

func TestCopyToAll(t *testing.T) {
	w := NewWeekSchedule()
	w[Tuesday] = DaySchedule{Open: true, Start: "7:00 AM", End: "3:00 PM"}

	w.CopyToAll(Tuesday)
	for _, d := range Weekdays() {
		if w[d] != w[Tuesday] {
			t.Errorf("expected %s to match Tuesday", d)
		}
	}
}

func TestTimeLabels(t *testing.T) {
	labels := TimeLabels()
	if len(labels) != 35 {
		t.Fatalf("len(TimeLabels()) = %d, want 35", len(labels))
	}
	if labels[0] != "6:00 AM" {
		t.Errorf("first label = %q, want 6:00 AM", labels[0])
	}
	if labels[len(labels)-1] != "11:00 PM" {
		t.Errorf("last label = %q, want 11:00 PM", labels[len(labels)-1])
	}
	for _, l := range labels {
		if strings.HasPrefix(l, "0") {
			t.Errorf("label %q has a zero-padded hour", l)
		}
	}
}

func TestOpenAt(t *testing.T) {
	w := Parse("Mon-Fri: 9:00 AM - 5:00 PM")

	// 2026-08-24 is a Monday.
	monday := func(hour, min int) time.Time {
		return time.Date(2026, 8, 24, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before opening", monday(8, 59), false},
		{"at opening", monday(9, 0), true},
		{"midday", monday(12, 30), true},
		{"at closing", monday(17, 0), false},
		{"closed day", time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC), false}, // Saturday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.OpenAt(tt.at); got != tt.want {
				t.Errorf("OpenAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestOpenAtToleratesBadHours(t *testing.T) {
	w := NewWeekSchedule()
	w[Monday] = DaySchedule{Open: true, Start: "whenever", End: "late"}
	w[Tuesday] = DaySchedule{Open: true, Start: "5:00 PM", End: "9:00 AM"}

	monday := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	tuesday := monday.Add(24 * time.Hour)

	if w.OpenAt(monday) {
		t.Error("unparseable labels must never report open")
	}
	if w.OpenAt(tuesday) {
		t.Error("inverted ranges must never report open")
	}
}
