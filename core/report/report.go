package report

import (
	"math"
	"time"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/expense"
	"github.com/jmstudio/fitmanage/core/schedule"
	"github.com/jmstudio/fitmanage/core/student"
)

// FinancialSummary is the month closing sheet: fees actually received for the
// cycle against the recurring potential, ledger expenses and the net result.
type FinancialSummary struct {
	Month     time.Month `json:"month"`
	Year      int        `json:"year"`
	Received  float64    `json:"received"`
	Potential float64    `json:"potential"`
	Expenses  float64    `json:"expenses"`
	Net       float64    `json:"net"`
}

// Financial derives the summary for one (month, year) cycle. Received sums
// the fee of every student with a paid record for the cycle regardless of
// status; Potential sums active fees only.
func Financial(students []student.Student, expenses []expense.Expense, month time.Month, year int) FinancialSummary {
	var received, potential float64
	for _, s := range students {
		if s.PaidForCycle(month, year) {
			received += s.MonthlyFee
		}
		if s.IsActive() {
			potential += s.MonthlyFee
		}
	}
	spent := expense.MonthTotal(expenses, month, year)
	return FinancialSummary{
		Month:     month,
		Year:      year,
		Received:  received,
		Potential: potential,
		Expenses:  spent,
		Net:       received - spent,
	}
}

// PaidForCycle returns the active students whose (month, year) cycle is
// settled.
func PaidForCycle(students []student.Student, month time.Month, year int) []student.Student {
	paid := make([]student.Student, 0)
	for _, s := range students {
		if s.IsActive() && s.PaidForCycle(month, year) {
			paid = append(paid, s)
		}
	}
	return paid
}

// PendingForCycle returns the active students still owing the (month, year)
// cycle.
func PendingForCycle(students []student.Student, month time.Month, year int) []student.Student {
	pending := make([]student.Student, 0)
	for _, s := range students {
		if s.IsActive() && !s.PaidForCycle(month, year) {
			pending = append(pending, s)
		}
	}
	return pending
}

// DashboardStats is the front-page KPI block.
type DashboardStats struct {
	ActiveStudents   int     `json:"active_students"`
	RecurringRevenue float64 `json:"recurring_revenue"`
	TotalCapacity    int     `json:"total_capacity"`
	TotalFree        int     `json:"total_free"`
	OccupancyPercent int     `json:"occupancy_percent"`
}

// Dashboard derives the KPI block from the roster. The occupancy percentage
// relates active students to the studio-wide capacity.
func Dashboard(students []student.Student) DashboardStats {
	stats := DashboardStats{
		TotalCapacity: len(core.ClassHours) * core.SlotCapacity,
		TotalFree:     schedule.TotalFree(students),
	}
	for _, s := range students {
		if s.IsActive() {
			stats.ActiveStudents++
			stats.RecurringRevenue += s.MonthlyFee
		}
	}
	if stats.TotalCapacity > 0 {
		stats.OccupancyPercent = int(math.Round(float64(stats.ActiveStudents) / float64(stats.TotalCapacity) * 100))
	}
	return stats
}
