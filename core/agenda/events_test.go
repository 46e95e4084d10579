package agenda

import (
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/jmstudio/fitmanage/core/student"
)

var today = time.Date(2026, time.March, 12, 15, 30, 0, 0, time.UTC)

func birthday(m time.Month, d int) time.Time {
	return time.Date(1990, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpcoming(t *testing.T) {
	students := []student.Student{
		{Name: "BdayIn3", BirthDate: birthday(time.March, 15), Status: student.StatusInactive},
		{Name: "BdayToday", BirthDate: birthday(time.March, 12), Status: student.StatusActive, BillingDay: 25},
		{Name: "BdayOut", BirthDate: birthday(time.March, 20), Status: student.StatusActive, BillingDay: 25},
		{Name: "DueIn7", Status: student.StatusActive, BillingDay: 19},
		{Name: "DueIn8", Status: student.StatusActive, BillingDay: 20},
		{Name: "DueInactive", Status: student.StatusInactive, BillingDay: 13},
		{Name: "NoBirthDate", Status: student.StatusPending},
	}

	events := Upcoming(students, today)

	byName := make(map[string]Event, len(events))
	for _, ev := range events {
		byName[ev.Student.Name+"/"+string(ev.Kind)] = ev
	}

	if ev, ok := byName["BdayIn3/birthday"]; !ok {
		t.Error("birthday 3 days out should be listed; inactive students still have birthdays")
	} else if ev.DaysUntil != 3 {
		t.Errorf("DaysUntil = %d, want 3", ev.DaysUntil)
	}

	if ev, ok := byName["BdayToday/birthday"]; !ok {
		t.Error("today's birthday should be listed")
	} else if ev.DaysUntil != 0 {
		t.Errorf("DaysUntil = %d, want 0", ev.DaysUntil)
	}

	if _, ok := byName["BdayOut/birthday"]; ok {
		t.Error("birthday 8 days out should not be listed")
	}

	if ev, ok := byName["DueIn7/due"]; !ok {
		t.Error("due date on the window edge should be listed")
	} else if ev.DaysUntil != 7 {
		t.Errorf("DaysUntil = %d, want 7", ev.DaysUntil)
	}

	if _, ok := byName["DueIn8/due"]; ok {
		t.Error("due date one past the window should not be listed")
	}
	if _, ok := byName["DueInactive/due"]; ok {
		t.Error("inactive students never owe a due date")
	}

	// sorted ascending by days-until
	for i := 1; i < len(events); i++ {
		if events[i-1].DaysUntil > events[i].DaysUntil {
			t.Errorf("events out of order at %d: %d > %d", i, events[i-1].DaysUntil, events[i].DaysUntil)
		}
	}
}

func TestUpcoming_birthdayBeforeDueOnSameDay(t *testing.T) {
	students := []student.Student{
		{Name: "Due", Status: student.StatusActive, BillingDay: 15},
		{Name: "Bday", BirthDate: birthday(time.March, 15), Status: student.StatusInactive},
	}

	events := Upcoming(students, today)
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Kind != KindBirthday || events[1].Kind != KindDue {
		t.Errorf("same-day order = %s, %s; want birthday, due", events[0].Kind, events[1].Kind)
	}
}

func TestUpcoming_windowAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("time.LoadLocation(): %v", err)
	}
	// spring forward on Mar 8, 2026 makes that day 23 hours long
	dstToday := time.Date(2026, time.March, 7, 10, 0, 0, 0, loc)

	students := []student.Student{
		{Name: "DueIn7", Status: student.StatusActive, BillingDay: 14},
		{Name: "DueIn8", Status: student.StatusActive, BillingDay: 15},
	}

	events := Upcoming(students, dstToday)
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1: %+v", len(events), events)
	}
	if events[0].Student.Name != "DueIn7" || events[0].DaysUntil != 7 {
		t.Errorf("got %s at %d days; want DueIn7 at 7", events[0].Student.Name, events[0].DaysUntil)
	}
}

func TestDigestMessage(t *testing.T) {
	to := mail.Address{Name: "Front Desk", Address: "desk@test.cd"}

	if msg := DigestMessage(nil, to, today); msg != nil {
		t.Fatal("empty window should produce no message")
	}

	students := []student.Student{
		{Name: "Ana", Phone: "123", Status: student.StatusActive, BillingDay: 12, MonthlyFee: 150},
		{Name: "Bruno", Phone: "456", BirthDate: birthday(time.March, 13), Status: student.StatusActive, BillingDay: 25},
	}
	msg := DigestMessage(Upcoming(students, today), to, today)
	if msg == nil {
		t.Fatal("expected a digest message")
	}
	if len(msg.To) != 1 || msg.To[0] != to {
		t.Errorf("To = %v, want %v", msg.To, to)
	}
	if !strings.Contains(msg.TextContent, "today: fee of 150.00 due from Ana") {
		t.Errorf("missing due line, got:\n%s", msg.TextContent)
	}
	if !strings.Contains(msg.TextContent, "tomorrow: birthday of Bruno") {
		t.Errorf("missing birthday line, got:\n%s", msg.TextContent)
	}
}
