package scheduler

import (
	"sort"

	"github.com/alexanderramin/concierge/internal/domain"
)

// SortSlots orders a day's slots by the fixed time-slot sequence:
// 1. Time slot: morning, lunch, afternoon, dinner, evening
// 2. Effective time: earlier first
// 3. Slot ID: lexical ascending
func SortSlots(slots []domain.ActivitySlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		a, b := &slots[i], &slots[j]

		if oa, ob := a.TimeSlot.Order(), b.TimeSlot.Order(); oa != ob {
			return oa < ob
		}

		if ta, tb := a.EffectiveTime(), b.EffectiveTime(); ta != tb {
			return ta < tb
		}

		return a.ID < b.ID
	})
}

// SortOptions orders options by rank, then ID.
func SortOptions(options []domain.ActivityOption) {
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Rank != options[j].Rank {
			return options[i].Rank < options[j].Rank
		}
		return options[i].ID < options[j].ID
	})
}

// SortDays orders days by day number.
func SortDays(days []domain.ProgramDay) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].DayNumber < days[j].DayNumber
	})
}
