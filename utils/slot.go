package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// WorkingHoursEntry is one parsed availability line, e.g. "Monday 9-17".
type WorkingHoursEntry struct {
	Day       string `json:"day"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
}

var availabilityPattern = regexp.MustCompile(`^([A-Z][a-z]+)\s+(\d+)-(\d+)$`)

// ParseAvailabilityEntry parses an entry like "Monday 9-17" into its parts.
// Anything that doesn't match the pattern returns nil; malformed entries
// simply vanish from availability instead of failing the whole day.
func ParseAvailabilityEntry(entry string) *WorkingHoursEntry {
	match := availabilityPattern.FindStringSubmatch(entry)
	if match == nil {
		return nil
	}
	start, err := strconv.Atoi(match[2])
	if err != nil {
		return nil
	}
	end, err := strconv.Atoi(match[3])
	if err != nil {
		return nil
	}
	return &WorkingHoursEntry{Day: match[1], StartHour: start, EndHour: end}
}

// DayOfWeekName returns the weekday spelled the way availability entries
// spell it ("Sunday".."Saturday").
func DayOfWeekName(t time.Time) string {
	return t.Weekday().String()
}

// GenerateSlotsForDay tiles the working-hour range with back-to-back slots of
// durationMinutes, labelled "HH:MM-HH:MM". A trailing remainder shorter than
// a full duration is dropped. endHour <= startHour yields no slots.
func GenerateSlotsForDay(date time.Time, startHour, endHour, durationMinutes int) []string {
	start := time.Date(date.Year(), date.Month(), date.Day(), startHour, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), endHour, 0, 0, 0, date.Location())

	var slots []string
	cursor := start
	for cursor.Before(end) {
		slotEnd := cursor.Add(time.Duration(durationMinutes) * time.Minute)
		if slotEnd.Before(end) || slotEnd.Equal(end) {
			slots = append(slots, fmt.Sprintf("%s-%s", cursor.Format("15:04"), slotEnd.Format("15:04")))
		}
		cursor = slotEnd
	}
	return slots
}

// SlotOverlaps reports whether two "HH:MM-HH:MM" labels intersect. Slots are
// half-open intervals, so "09:00-09:30" and "09:30-10:00" do not overlap.
func SlotOverlaps(a, b string) bool {
	aStart, aEnd, errA := parseSlotLabel(a)
	bStart, bEnd, errB := parseSlotLabel(b)
	if errA != nil || errB != nil {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// SlotStart returns the start time-of-day of a slot label on the given date.
func SlotStart(date time.Time, slot string) (time.Time, error) {
	start, _, err := parseSlotLabel(slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		start.Hour(), start.Minute(), 0, 0, date.Location()), nil
}

func parseSlotLabel(label string) (time.Time, time.Time, error) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid slot label %q", label)
	}
	start, err := time.Parse("15:04", parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid slot label %q", label)
	}
	end, err := time.Parse("15:04", parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid slot label %q", label)
	}
	return start, end, nil
}
