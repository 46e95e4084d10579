package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/expense"
	"github.com/jmstudio/fitmanage/core/student"
)

func paidStudent(name string, fee float64, status student.Status, m time.Month, y int) student.Student {
	return student.Student{
		Name:       name,
		MonthlyFee: fee,
		Status:     status,
		Payments:   []student.PaymentRecord{{Month: m, Year: y, Status: student.PaymentPaid}},
	}
}

func TestFinancial(t *testing.T) {
	students := []student.Student{
		paidStudent("Ana", 100, student.StatusActive, time.March, 2026),
		paidStudent("Bruno", 80, student.StatusInactive, time.March, 2026), // received counts any status
		{Name: "Carla", MonthlyFee: 120, Status: student.StatusActive},     // owing
		{Name: "Dani", MonthlyFee: 50, Status: student.StatusPending},      // not in potential
	}
	expenses := []expense.Expense{
		{Amount: 90, Date: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: 10, Date: time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)},
	}

	sum := Financial(students, expenses, time.March, 2026)
	assert.Equal(t, 180.0, sum.Received)
	assert.Equal(t, 220.0, sum.Potential)
	assert.Equal(t, 90.0, sum.Expenses)
	assert.Equal(t, 90.0, sum.Net)

	empty := Financial(nil, nil, time.March, 2026)
	assert.Zero(t, empty.Received)
	assert.Zero(t, empty.Net)
}

func TestPaidAndPendingForCycle(t *testing.T) {
	students := []student.Student{
		paidStudent("Ana", 100, student.StatusActive, time.March, 2026),
		paidStudent("Bruno", 80, student.StatusInactive, time.March, 2026),
		{Name: "Carla", MonthlyFee: 120, Status: student.StatusActive},
	}

	paid := PaidForCycle(students, time.March, 2026)
	if assert.Len(t, paid, 1) {
		assert.Equal(t, "Ana", paid[0].Name)
	}

	pending := PendingForCycle(students, time.March, 2026)
	if assert.Len(t, pending, 1) {
		assert.Equal(t, "Carla", pending[0].Name)
	}

	// inactive students appear in neither list
	for _, s := range append(paid, pending...) {
		assert.NotEqual(t, "Bruno", s.Name)
	}
}

func TestDashboard(t *testing.T) {
	capacity := len(core.ClassHours) * core.SlotCapacity

	empty := Dashboard(nil)
	assert.Zero(t, empty.ActiveStudents)
	assert.Equal(t, capacity, empty.TotalCapacity)
	assert.Equal(t, capacity, empty.TotalFree)
	assert.Zero(t, empty.OccupancyPercent)

	students := []student.Student{
		{Name: "Ana", MonthlyFee: 100, Status: student.StatusActive, ClassTime: "06:00"},
		{Name: "Bruno", MonthlyFee: 80, Status: student.StatusActive, ClassTime: "07:00"},
		{Name: "Carla", MonthlyFee: 120, Status: student.StatusInactive, ClassTime: "06:00"},
	}
	stats := Dashboard(students)
	assert.Equal(t, 2, stats.ActiveStudents)
	assert.Equal(t, 180.0, stats.RecurringRevenue)
	assert.Equal(t, capacity-3, stats.TotalFree)
	assert.Equal(t, 2, stats.OccupancyPercent) // 2 of 108, rounded
}
