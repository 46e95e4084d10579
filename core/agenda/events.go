package agenda

import (
	"sort"
	"time"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/student"
)

// Kind tags the nature of an upcoming event.
type Kind string

const (
	KindBirthday Kind = "birthday"
	KindDue      Kind = "due"
)

// Event is one upcoming alert within the lookahead window.
type Event struct {
	Student   student.Student `json:"student"`
	Kind      Kind            `json:"kind"`
	Date      time.Time       `json:"date"`
	DaysUntil int             `json:"days_until"`
}

// Upcoming scans the roster for birthdays and billing due dates falling
// within the lookahead window from today (day 0 = today, inclusive on both
// ends) and merges them into one list sorted ascending by days-until. The
// sort is stable: same-day birthdays precede dues because they are appended
// first during the scan.
//
// Birthdays project the stored birth month/day onto today's year; the birth
// year is ignored. Dues only consider active students.
func Upcoming(students []student.Student, today time.Time) []Event {
	var events []Event

	for _, s := range students {
		if s.BirthDate.IsZero() {
			continue
		}
		bday := time.Date(today.Year(), s.BirthDate.Month(), s.BirthDate.Day(), 0, 0, 0, 0, today.Location())
		if diff := daysUntil(today, bday); 0 <= diff && diff <= core.UpcomingWindowDays {
			events = append(events, Event{Student: s, Kind: KindBirthday, Date: bday, DaysUntil: diff})
		}
	}

	for _, s := range students {
		if !s.IsActive() {
			continue
		}
		due := student.NextDueDate(s, today)
		if diff := daysUntil(today, due); 0 <= diff && diff <= core.UpcomingWindowDays {
			events = append(events, Event{Student: s, Kind: KindDue, Date: due, DaysUntil: diff})
		}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].DaysUntil < events[j].DaysUntil })
	return events
}

// daysUntil counts calendar days between the two dates. Both endpoints are
// normalized to UTC midnight so a DST-shortened day cannot skew the count.
func daysUntil(today, target time.Time) int {
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
