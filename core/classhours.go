package core

// ClassHours is the fixed, ordered list of class time-of-day labels students
// can be assigned to. A student's ClassTime is either empty (unassigned) or
// one of these values.
var ClassHours = []string{
	"05:00", "06:00", "07:00", "08:00",
	"16:00", "17:00", "18:00", "19:00", "20:00",
}

const (
	// SlotCapacity is the seat count of every class hour.
	SlotCapacity = 12

	// UpcomingWindowDays is the lookahead horizon (inclusive of today) used
	// for birthday and billing-due alerts.
	UpcomingWindowDays = 7
)

// IsClassHour reports whether h is one of the configured class hours.
func IsClassHour(h string) bool {
	for _, hour := range ClassHours {
		if h == hour {
			return true
		}
	}
	return false
}
