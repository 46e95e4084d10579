package student

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBillingDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  time.Time
	}{
		{name: "plain", year: 2026, month: time.March, day: 15, want: date(2026, time.March, 15)},
		{name: "day 31 in 30-day month clamps", year: 2026, month: time.April, day: 31, want: date(2026, time.April, 30)},
		{name: "day 31 in february clamps", year: 2026, month: time.February, day: 31, want: date(2026, time.February, 28)},
		{name: "day 29 in leap february", year: 2028, month: time.February, day: 29, want: date(2028, time.February, 29)},
		{name: "month 13 normalizes to january", year: 2026, month: time.December + 1, day: 5, want: date(2027, time.January, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BillingDate(tt.year, tt.month, tt.day, time.UTC); !got.Equal(tt.want) {
				t.Errorf("BillingDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name       string
		billingDay int
		today      time.Time
		want       time.Time
	}{
		{name: "due later this month", billingDay: 5, today: date(2026, time.March, 3), want: date(2026, time.March, 5)},
		{name: "due today", billingDay: 5, today: date(2026, time.March, 5), want: date(2026, time.March, 5)},
		{name: "already past, advances a month", billingDay: 5, today: date(2026, time.March, 10), want: date(2026, time.April, 5)},
		{name: "advance clamps to shorter month", billingDay: 31, today: date(2026, time.March, 31), want: date(2026, time.March, 31)},
		{name: "past day 31 clamps in april", billingDay: 31, today: date(2026, time.April, 1), want: date(2026, time.April, 30)},
		{name: "december rolls over the year", billingDay: 5, today: date(2026, time.December, 20), want: date(2027, time.January, 5)},
		{name: "intra-day time ignored", billingDay: 5, today: time.Date(2026, time.March, 5, 23, 59, 0, 0, time.UTC), want: date(2026, time.March, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Student{BillingDay: tt.billingDay}
			if got := NextDueDate(s, tt.today); !got.Equal(tt.want) {
				t.Errorf("NextDueDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStudent_PaidForCycle(t *testing.T) {
	s := Student{
		Payments: []PaymentRecord{
			{Month: time.January, Year: 2026, Status: PaymentPaid},
			{Month: time.February, Year: 2026, Status: PaymentPending},
		},
	}

	if !s.PaidForCycle(time.January, 2026) {
		t.Error("january 2026 should be paid")
	}
	if s.PaidForCycle(time.February, 2026) {
		t.Error("pending record should not count as paid")
	}
	if s.PaidForCycle(time.January, 2025) {
		t.Error("same month of another year should not count")
	}
	if s.PaidForCycle(time.March, 2026) {
		t.Error("absent cycle should not count")
	}
}
