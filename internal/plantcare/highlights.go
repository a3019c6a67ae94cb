package plantcare

import (
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

// OccurrenceSummary is the per-row slice of a highlight bucket.
type OccurrenceSummary struct {
	ID       int    `json:"id"`
	AlarmID  int    `json:"alarm_id"`
	Activity string `json:"activity"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}

// DayHighlight aggregates every occurrence that falls on one calendar date.
type DayHighlight struct {
	Total      int                 `json:"total"`
	ByStatus   map[string]int      `json:"by_status"`
	ByActivity map[string]int      `json:"by_activity"`
	Items      []OccurrenceSummary `json:"items"`
}

// BuildHighlights groups occurrences by their YYYY-MM-DD date for the
// calendar view. No date filtering happens here; callers pass whatever
// window they fetched.
func BuildHighlights(occurrences []model.CalendarOccurrence) map[string]DayHighlight {
	out := make(map[string]DayHighlight)
	for _, occ := range occurrences {
		key := occ.Date.Format(dateKeyLayout)
		day, ok := out[key]
		if !ok {
			day = DayHighlight{
				ByStatus:   make(map[string]int),
				ByActivity: make(map[string]int),
			}
		}
		day.Total++
		day.ByStatus[occ.Status]++
		day.ByActivity[occ.Activity]++
		day.Items = append(day.Items, OccurrenceSummary{
			ID:       occ.ID,
			AlarmID:  occ.AlarmID,
			Activity: occ.Activity,
			Time:     occ.Time,
			Status:   occ.Status,
		})
		out[key] = day
	}
	return out
}
