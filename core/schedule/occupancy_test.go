package schedule

import (
	"testing"

	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/student"
)

func assigned(slot string, n int, status student.Status) []student.Student {
	students := make([]student.Student, 0, n)
	for i := 0; i < n; i++ {
		students = append(students, student.Student{ClassTime: slot, Status: status})
	}
	return students
}

func TestSlotOccupancy(t *testing.T) {
	tests := []struct {
		name     string
		students []student.Student
		wantN    int
		wantFree int
		wantTier Tier
	}{
		{name: "empty slot", wantN: 0, wantFree: 12, wantTier: TierOpen},
		{name: "below threshold", students: assigned("06:00", 9, student.StatusActive), wantN: 9, wantFree: 3, wantTier: TierOpen},
		{name: "at 80 percent", students: assigned("06:00", 10, student.StatusActive), wantN: 10, wantFree: 2, wantTier: TierLimited},
		{name: "one seat left", students: assigned("06:00", 11, student.StatusActive), wantN: 11, wantFree: 1, wantTier: TierLimited},
		{name: "full", students: assigned("06:00", 12, student.StatusActive), wantN: 12, wantFree: 0, wantTier: TierFull},
		{name: "over-allocated reports negative free", students: assigned("06:00", 13, student.StatusActive), wantN: 13, wantFree: -1, wantTier: TierFull},
		{name: "pending students hold seats", students: assigned("06:00", 12, student.StatusPending), wantN: 12, wantFree: 0, wantTier: TierFull},
		{name: "other slots do not count", students: assigned("07:00", 12, student.StatusActive), wantN: 0, wantFree: 12, wantTier: TierOpen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occ := SlotOccupancy("06:00", tt.students)
			if occ.Count != tt.wantN {
				t.Errorf("Count = %d, want %d", occ.Count, tt.wantN)
			}
			if occ.Free != tt.wantFree {
				t.Errorf("Free = %d, want %d", occ.Free, tt.wantFree)
			}
			if occ.Tier != tt.wantTier {
				t.Errorf("Tier = %s, want %s", occ.Tier, tt.wantTier)
			}
		})
	}
}

func TestOccupancies(t *testing.T) {
	students := append(assigned("05:00", 3, student.StatusActive), assigned("20:00", 12, student.StatusActive)...)

	occs := Occupancies(students)
	if len(occs) != len(core.ClassHours) {
		t.Fatalf("len = %d, want %d", len(occs), len(core.ClassHours))
	}
	for i, occ := range occs {
		if occ.Slot != core.ClassHours[i] {
			t.Errorf("slot order broken at %d: got %s, want %s", i, occ.Slot, core.ClassHours[i])
		}
	}

	// seat conservation: counts plus frees always cover the studio capacity
	var total int
	for _, occ := range occs {
		total += occ.Count + occ.Free
	}
	if want := len(core.ClassHours) * core.SlotCapacity; total != want {
		t.Errorf("count+free total = %d, want %d", total, want)
	}
}

func TestTotalFree(t *testing.T) {
	capacity := len(core.ClassHours) * core.SlotCapacity

	if got := TotalFree(nil); got != capacity {
		t.Errorf("TotalFree(nil) = %d, want %d", got, capacity)
	}

	students := assigned("06:00", 5, student.StatusActive)
	students = append(students, student.Student{Status: student.StatusPending}) // unassigned
	if got := TotalFree(students); got != capacity-5 {
		t.Errorf("TotalFree() = %d, want %d", got, capacity-5)
	}
}
