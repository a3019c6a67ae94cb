package plantcare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseFrequency(t *testing.T) {
	cases := map[string]Frequency{
		"Once":           Once,
		"once":           Once,
		"Daily":          Daily,
		"DAILY":          Daily,
		"Weekly":         Weekly,
		"Monthly":        Monthly,
		"2 times a day":  TwiceDaily,
		"2 Times A Day":  TwiceDaily,
		"After 2 weeks":  AfterTwoWeeks,
		"after 2 weeks ": AfterTwoWeeks,
		"":               Once,
		"fortnightly":    Once,
	}
	for input, want := range cases {
		assert.Equal(t, want, ParseFrequency(input), "input %q", input)
	}
}

func TestGenerateDaily(t *testing.T) {
	base := date(2025, time.March, 1)
	rows := GenerateOccurrences(model.ActivityWatering, base, Daily, nil)

	assert.Len(t, rows, 30)
	for i, row := range rows {
		assert.Equal(t, base.AddDate(0, 0, i), row.Date)
		assert.Equal(t, "", row.Time)
		assert.Equal(t, model.ActivityWatering, row.Activity)
	}
}

func TestGenerateDailyWithTimes(t *testing.T) {
	base := date(2025, time.March, 1)
	rows := GenerateOccurrences(model.ActivityWatering, base, Daily, []string{"08:00", "20:00"})

	assert.Len(t, rows, 60)
	assert.Equal(t, "08:00", rows[0].Time)
	assert.Equal(t, "20:00", rows[1].Time)
	assert.Equal(t, base, rows[0].Date)
	assert.Equal(t, base, rows[1].Date)
}

func TestGenerateWeekly(t *testing.T) {
	base := date(2025, time.January, 1)
	rows := GenerateOccurrences(model.ActivityPruning, base, Weekly, nil)

	assert.Len(t, rows, 12)
	for i, row := range rows {
		assert.Equal(t, base.AddDate(0, 0, 7*i), row.Date)
	}
	assert.Equal(t, date(2025, time.March, 19), rows[11].Date)
}

func TestGenerateMonthly(t *testing.T) {
	base := date(2025, time.January, 15)
	rows := GenerateOccurrences(model.ActivityFertilizing, base, Monthly, nil)

	assert.Len(t, rows, 6)
	for i, row := range rows {
		assert.Equal(t, base.AddDate(0, i, 0), row.Date)
	}
}

func TestGenerateAfterTwoWeeks(t *testing.T) {
	base := date(2025, time.June, 1)
	rows := GenerateOccurrences(model.ActivityWatering, base, AfterTwoWeeks, nil)

	assert.Len(t, rows, 1)
	assert.Equal(t, date(2025, time.June, 15), rows[0].Date)
}

func TestGenerateOnce(t *testing.T) {
	base := date(2025, time.June, 1)
	rows := GenerateOccurrences(model.ActivityWatering, base, Once, nil)

	assert.Len(t, rows, 1)
	assert.Equal(t, base, rows[0].Date)
	assert.Equal(t, "", rows[0].Time)
}

func TestGenerateTwiceDaily(t *testing.T) {
	base := date(2025, time.June, 1)
	rows := GenerateOccurrences(model.ActivityWatering, base, TwiceDaily, []string{"07:30", "19:30"})

	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, base, row.Date)
	}

	// no times given: still one row on the base date
	rows = GenerateOccurrences(model.ActivityWatering, base, TwiceDaily, nil)
	assert.Len(t, rows, 1)
}

func TestGenerateDeduplicatesRepeatedTimes(t *testing.T) {
	base := date(2025, time.June, 1)
	rows := GenerateOccurrences(model.ActivityWatering, base, TwiceDaily, []string{"08:00", "08:00"})

	assert.Len(t, rows, 1)
	assert.Equal(t, "08:00", rows[0].Time)
}

func TestGenerateNormalizesTimestamps(t *testing.T) {
	noisy := time.Date(2025, time.March, 1, 17, 42, 9, 120, time.UTC)
	rows := GenerateOccurrences(model.ActivityWatering, noisy, Once, nil)

	assert.Equal(t, date(2025, time.March, 1), rows[0].Date)
}
