package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAvailabilityEntry(t *testing.T) {
	entry := ParseAvailabilityEntry("Monday 9-17")
	require.NotNil(t, entry)
	assert.Equal(t, "Monday", entry.Day)
	assert.Equal(t, 9, entry.StartHour)
	assert.Equal(t, 17, entry.EndHour)
}

func TestParseAvailabilityEntryRoundTrip(t *testing.T) {
	days := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	for _, day := range days {
		for start := 0; start < 23; start += 5 {
			end := start + 1
			entry := ParseAvailabilityEntry(fmt.Sprintf("%s %d-%d", day, start, end))
			require.NotNil(t, entry, "day %s %d-%d", day, start, end)
			assert.Equal(t, day, entry.Day)
			assert.Equal(t, start, entry.StartHour)
			assert.Equal(t, end, entry.EndHour)
		}
	}
}

func TestParseAvailabilityEntryRejectsMalformed(t *testing.T) {
	malformed := []string{
		"",
		"Monday",
		"monday 9-17",
		"Monday 9",
		"Monday 9:00-17:00",
		"Monday 9 - 17",
		"Monday 9-17 extra",
		"MONDAY 9-17",
		" Monday 9-17",
	}
	for _, entry := range malformed {
		assert.Nil(t, ParseAvailabilityEntry(entry), "entry %q should not parse", entry)
	}
}

func TestGenerateSlotsForDayTiling(t *testing.T) {
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC) // a Monday

	slots := GenerateSlotsForDay(date, 9, 17, 30)
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00-09:30", slots[0])
	assert.Equal(t, "16:30-17:00", slots[15])

	// chronological, no duplicates
	seen := map[string]bool{}
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
	for _, s := range slots {
		assert.False(t, seen[s])
		seen[s] = true
	}
}

func TestGenerateSlotsForDayDropsRemainder(t *testing.T) {
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlotsForDay(date, 9, 10, 40)
	assert.Equal(t, []string{"09:00-09:40"}, slots)
}

func TestGenerateSlotsForDayEmptyRange(t *testing.T) {
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, GenerateSlotsForDay(date, 17, 9, 30))
	assert.Empty(t, GenerateSlotsForDay(date, 9, 9, 30))
}

func TestGenerateSlotsForDayDeterministic(t *testing.T) {
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	first := GenerateSlotsForDay(date, 8, 12, 45)
	second := GenerateSlotsForDay(date, 8, 12, 45)
	assert.Equal(t, first, second)
}

func TestSlotOverlaps(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"09:00-09:30", "09:15-09:45", true},
		{"09:00-09:30", "09:30-10:00", false}, // adjacency is not overlap
		{"09:00-10:00", "09:15-09:45", true},  // containment
		{"09:00-09:30", "09:00-09:30", true},  // identity
		{"09:00-09:30", "10:00-10:30", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SlotOverlaps(tc.a, tc.b), "overlaps(%s, %s)", tc.a, tc.b)
		// symmetry
		assert.Equal(t, SlotOverlaps(tc.a, tc.b), SlotOverlaps(tc.b, tc.a), "symmetry for (%s, %s)", tc.a, tc.b)
	}
}

func TestSlotStart(t *testing.T) {
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	start, err := SlotStart(date, "14:30-15:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 2, 14, 30, 0, 0, time.UTC), start)

	_, err = SlotStart(date, "not-a-slot")
	assert.Error(t, err)
}

func TestDayOfWeekName(t *testing.T) {
	assert.Equal(t, "Monday", DayOfWeekName(time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Sunday", DayOfWeekName(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, time.June, 2, 13, 45, 12, 0, time.UTC)
	start, end := DayBounds(at)
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.June, 2, 23, 59, 59, 999000000, time.UTC), end)
}
