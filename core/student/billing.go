package student

import "time"

// PaidForCycle reports whether the student's payment list holds a paid record
// for the (month, year) cycle. Equality is month+year only; a payment is a
// monthly flag, not a timestamped transaction.
func (s Student) PaidForCycle(month time.Month, year int) bool {
	for _, p := range s.Payments {
		if p.Month == month && p.Year == year && p.Status == PaymentPaid {
			return true
		}
	}
	return false
}

// BillingDate builds the due date of a cycle from a billing day-of-month,
// clamping the day to the month's length (billing day 31 in April bills on
// April 30). Out-of-range months normalize per time.Date.
func BillingDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	if last := lastDayOfMonth(year, month, loc); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// NextDueDate computes the student's next fee due date relative to today.
// The candidate is this month's billing date; if that is strictly before
// today (midnight comparison) it advances one calendar month, clamping the
// day again for the new month and rolling the year over December.
func NextDueDate(s Student, today time.Time) time.Time {
	due := BillingDate(today.Year(), today.Month(), s.BillingDay, today.Location())
	if due.Before(midnight(today)) {
		due = BillingDate(today.Year(), today.Month()+1, s.BillingDay, today.Location())
	}
	return due
}

func lastDayOfMonth(year int, month time.Month, loc *time.Location) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
