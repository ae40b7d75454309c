package scheduler

import (
	"math/rand/v2"

	"github.com/alexanderramin/concierge/internal/domain"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultShuffler draws from the process-wide random source.
func DefaultShuffler() Shuffler {
	return globalShuffler{}
}

// NewSeededShuffler returns a deterministic shuffler for the given seed.
func NewSeededShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// picker draws venues without repeating a name and keeps the one-shot
// budget shared across every draw it makes.
type picker struct {
	shuffler      Shuffler
	used          map[string]bool
	oneShotPlaced bool
}

func newPicker(s Shuffler, used map[string]bool, oneShotPlaced bool) *picker {
	if s == nil {
		s = DefaultShuffler()
	}
	if used == nil {
		used = make(map[string]bool)
	}
	return &picker{shuffler: s, used: used, oneShotPlaced: oneShotPlaced}
}

// eligible filters out used names and, once a one-shot venue is placed,
// every other one-shot venue.
func (p *picker) eligible(pool []domain.Venue) []domain.Venue {
	out := make([]domain.Venue, 0, len(pool))
	for _, v := range pool {
		if p.used[domain.NameKey(v.Name)] {
			continue
		}
		if p.oneShotPlaced && v.IsOneShot() {
			continue
		}
		out = append(out, v)
	}
	return out
}

// take shuffles candidates and returns up to n of them, marking each name used.
func (p *picker) take(candidates []domain.Venue, n int) []domain.Venue {
	shuffled := make([]domain.Venue, len(candidates))
	copy(shuffled, candidates)
	p.shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	out := make([]domain.Venue, 0, n)
	for _, v := range shuffled {
		if len(out) == n {
			break
		}
		key := domain.NameKey(v.Name)
		if p.used[key] {
			continue
		}
		if v.IsOneShot() {
			if p.oneShotPlaced {
				continue
			}
			p.oneShotPlaced = true
		}
		p.used[key] = true
		out = append(out, v)
	}
	return out
}
