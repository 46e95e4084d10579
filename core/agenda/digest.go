package agenda

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jmstudio/fitmanage/core"
)

// DigestMessage renders the upcoming window into a plain-text email for a
// staff recipient. Returns nil when there is nothing to report.
func DigestMessage(events []Event, to mail.Address, today time.Time) *core.EmailMessage {
	if len(events) == 0 {
		return nil
	}

	body := new(strings.Builder)
	fmt.Fprintf(body, "Upcoming events for the next %d days (%s):\n\n",
		core.UpcomingWindowDays, today.Format("Mon, 02 Jan 2006"))

	for _, ev := range events {
		var when string
		switch ev.DaysUntil {
		case 0:
			when = "today"
		case 1:
			when = "tomorrow"
		default:
			when = fmt.Sprintf("in %d days", ev.DaysUntil)
		}

		switch ev.Kind {
		case KindBirthday:
			fmt.Fprintf(body, "- %s: birthday of %s (%s)\n", when, ev.Student.Name, ev.Student.Phone)
		case KindDue:
			fmt.Fprintf(body, "- %s: fee of %.2f due from %s (%s)\n",
				when, ev.Student.MonthlyFee, ev.Student.Name, ev.Student.Phone)
		}
	}

	return &core.EmailMessage{
		To:          []mail.Address{to},
		Subject:     fmt.Sprintf("Agenda digest for %s", today.Format("02 Jan 2006")),
		TextContent: body.String(),
	}
}
