package scheduler

import (
	"time"

	"github.com/alexanderramin/concierge/internal/domain"
)

// usedOutside collects the names placed in the program, skipping options for
// which skip returns true, and reports whether a one-shot remains among them.
func usedOutside(p *domain.Program, skip func(slot *domain.ActivitySlot, o *domain.ActivityOption) bool) (map[string]bool, bool) {
	used := make(map[string]bool)
	oneShot := false
	for di := range p.Days {
		for si := range p.Days[di].Activities {
			slot := &p.Days[di].Activities[si]
			for oi := range slot.Options {
				o := &slot.Options[oi]
				if skip(slot, o) {
					continue
				}
				if o.VenueName != "" {
					used[domain.NameKey(o.VenueName)] = true
				}
				if slot.Category == domain.CategoryActivities && domain.IsOneShot(o.SubCategory) {
					oneShot = true
				}
			}
		}
	}
	return used, oneShot
}

// RegenerationCandidates returns the venues of pool that may replace the
// option: not already in the program (the option's own venue included), not
// excluded, and not a second one-shot activity.
func RegenerationCandidates(p *domain.Program, optionID string, pool []domain.Venue, excluded map[string]bool) []domain.Venue {
	if p.SlotForOption(optionID) == nil {
		return nil
	}
	used := p.UsedVenueNames()
	_, oneShotElsewhere := usedOutside(p, func(_ *domain.ActivitySlot, o *domain.ActivityOption) bool {
		return o.ID == optionID
	})

	out := make([]domain.Venue, 0, len(pool))
	for _, v := range pool {
		key := domain.NameKey(v.Name)
		if used[key] || excluded[key] {
			continue
		}
		if oneShotElsewhere && v.IsOneShot() {
			continue
		}
		out = append(out, v)
	}
	return out
}

// PickReplacement draws one venue uniformly from candidates.
func PickReplacement(s Shuffler, candidates []domain.Venue) (domain.Venue, bool) {
	got := newPicker(s, nil, false).take(candidates, 1)
	if len(got) == 0 {
		return domain.Venue{}, false
	}
	return got[0], true
}

// SwitchDraw draws a fresh option set for the slot groupID from pool. Names
// used by other slots and excluded names are skipped. When date is known the
// availability filter applies, falling back to the unfiltered candidates if
// fewer than MinAvailable survive.
func SwitchDraw(s Shuffler, p *domain.Program, groupID string, category domain.Category, pool []domain.Venue, excluded map[string]bool, date *time.Time, hhmm string) []domain.Venue {
	used, oneShotElsewhere := usedOutside(p, func(slot *domain.ActivitySlot, _ *domain.ActivityOption) bool {
		return slot.ID == groupID
	})
	for name := range excluded {
		used[name] = true
	}

	pk := newPicker(s, used, oneShotElsewhere)
	candidates, _ := PreferAvailable(pk.eligible(pool), date, hhmm, MinAvailable)
	return pk.take(candidates, OptionCount(category))
}
