package plantcare

import "strings"

// Frequency is the closed set of supported reminder cadences. Clients
// historically sent free-form strings ("2 times a day", "After 2 weeks"),
// so ParseFrequency folds those onto the enum instead of matching
// substrings all over the codebase.
type Frequency int

const (
	Once Frequency = iota
	TwiceDaily
	Daily
	Weekly
	AfterTwoWeeks
	Monthly
)

func (f Frequency) String() string {
	switch f {
	case TwiceDaily:
		return "2 times a day"
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case AfterTwoWeeks:
		return "After 2 weeks"
	case Monthly:
		return "Monthly"
	default:
		return "Once"
	}
}

// ParseFrequency maps a client-supplied frequency string onto the enum.
// Matching is case-insensitive and ordered; the first rule that applies
// wins, and anything unrecognized (including "") is treated as Once.
func ParseFrequency(s string) Frequency {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(lower, "2 times"):
		return TwiceDaily
	case strings.Contains(lower, "after 2 weeks"):
		return AfterTwoWeeks
	case strings.Contains(lower, "daily"):
		return Daily
	case strings.Contains(lower, "weekly"):
		return Weekly
	case strings.Contains(lower, "monthly"):
		return Monthly
	default:
		return Once
	}
}
