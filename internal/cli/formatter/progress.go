package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/concierge/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 4/8. The bar is green when
// complete, yellow past half and red below.
func RenderProgress(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	done = min(max(done, 0), total)

	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleRed
	switch {
	case total == 0 || done == total:
		style = StyleGreen
	case done*2 >= total:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), done, total)
}

// SelectionCounts returns how many filled slots already hold a complete
// selection, and how many filled slots there are. Rest slots and slots
// without options are not counted.
func SelectionCounts(p *domain.Program) (done, total int) {
	for _, d := range p.Days {
		for _, s := range d.Activities {
			if s.IsRest || len(s.Options) == 0 {
				continue
			}
			total++
			n := len(s.Selected())
			if n == 1 || (s.IsShopping() && n >= 1) {
				done++
			}
		}
	}
	return done, total
}
