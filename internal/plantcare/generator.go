package plantcare

import "time"

// OccurrenceSeed is one calendar row implied by an alarm definition,
// before it has been persisted.
type OccurrenceSeed struct {
	Activity string
	Date     time.Time
	Time     string
}

const dateKeyLayout = "2006-01-02"

// DateOnly strips the clock portion of t, keeping date semantics stable
// regardless of what timestamp the client sent.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GenerateOccurrences expands an alarm definition into the calendar rows
// it implies. For every generated date it emits one row per entry in
// times, or a single row with an empty time when times is empty. Rows are
// deduplicated by (date, time), first occurrence wins.
func GenerateOccurrences(activity string, baseDate time.Time, freq Frequency, times []string) []OccurrenceSeed {
	base := DateOnly(baseDate)

	var dates []time.Time
	switch freq {
	case TwiceDaily, Once:
		dates = []time.Time{base}
	case Daily:
		for i := 0; i < 30; i++ {
			dates = append(dates, base.AddDate(0, 0, i))
		}
	case Weekly:
		for i := 0; i < 12; i++ {
			dates = append(dates, base.AddDate(0, 0, 7*i))
		}
	case AfterTwoWeeks:
		dates = []time.Time{base.AddDate(0, 0, 14)}
	case Monthly:
		for i := 0; i < 6; i++ {
			dates = append(dates, base.AddDate(0, i, 0))
		}
	}

	slots := times
	if len(slots) == 0 {
		slots = []string{""}
	}

	seen := make(map[string]struct{}, len(dates)*len(slots))
	out := make([]OccurrenceSeed, 0, len(dates)*len(slots))
	for _, d := range dates {
		for _, at := range slots {
			key := d.Format(dateKeyLayout) + "|" + at
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, OccurrenceSeed{Activity: activity, Date: d, Time: at})
		}
	}
	return out
}
