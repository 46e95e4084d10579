package schedule

import (
	"github.com/jmstudio/fitmanage/core"
	"github.com/jmstudio/fitmanage/core/student"
)

// Tier classifies a slot's fill level and drives enrollment warnings.
type Tier string

const (
	// TierOpen means seats are freely available.
	TierOpen Tier = "open"
	// TierLimited warns that the slot is at 80% capacity or more.
	TierLimited Tier = "limited"
	// TierFull blocks further enrollment; Free is zero or negative.
	TierFull Tier = "full"
)

// Occupancy is the derived seat usage of a single class hour.
type Occupancy struct {
	Slot  string `json:"slot"`
	Count int    `json:"count"`
	// Free is never clamped: a slot over-allocated by direct data
	// manipulation reports a negative value. Callers decide whether to block.
	Free int  `json:"free"`
	Tier Tier `json:"tier"`
}

// SlotOccupancy counts the students assigned to slot. Status is not filtered:
// a pending student holds a seat before being billed.
func SlotOccupancy(slot string, students []student.Student) Occupancy {
	var count int
	for _, s := range students {
		if s.ClassTime == slot {
			count++
		}
	}
	free := core.SlotCapacity - count
	return Occupancy{
		Slot:  slot,
		Count: count,
		Free:  free,
		Tier:  classify(count, free),
	}
}

// Occupancies computes the occupancy of every configured class hour, in
// configuration order.
func Occupancies(students []student.Student) []Occupancy {
	occs := make([]Occupancy, 0, len(core.ClassHours))
	for _, hour := range core.ClassHours {
		occs = append(occs, SlotOccupancy(hour, students))
	}
	return occs
}

// TotalFree is the seat count left across all class hours. Students with an
// unknown ClassTime still count as assigned here even though no slot-keyed
// computation sees them.
func TotalFree(students []student.Student) int {
	var assigned int
	for _, s := range students {
		if s.IsAssigned() {
			assigned++
		}
	}
	return len(core.ClassHours)*core.SlotCapacity - assigned
}

func classify(count, free int) Tier {
	switch {
	case free <= 0:
		return TierFull
	case count*100 >= core.SlotCapacity*80:
		return TierLimited
	default:
		return TierOpen
	}
}
