package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/repository"
)

// Audience selects which copy of the program text is shown.
type Audience int

const (
	// AudienceInternal shows concierge copy, ids and verification state.
	AudienceInternal Audience = iota
	// AudienceClient shows client copy and selected options only.
	AudienceClient
)

var slotLabels = map[domain.TimeSlot]string{
	domain.SlotMorning:   "Matin",
	domain.SlotLunch:     "Déjeuner",
	domain.SlotAfternoon: "Après-midi",
	domain.SlotDinner:    "Dîner",
	domain.SlotEvening:   "Soirée",
}

// FormatProgram renders a full program, day by day.
func FormatProgram(p *domain.Program, audience Audience) string {
	var b strings.Builder

	intro, closing := p.IntroInternal, p.ClosingInternal
	if audience == AudienceClient {
		intro, closing = p.IntroClient, p.ClosingClient
	}

	var head strings.Builder
	head.WriteString(Bold(p.Title) + "\n")
	fmt.Fprintf(&head, "%s  %s → %s  %d %s  %s\n",
		StyleBlue.Render(p.City),
		DateOrDash(p.StartDate), DateOrDash(p.EndDate),
		p.Guests, Plural(p.Guests, "guest", "guests"),
		string(p.Intensity))
	if audience == AudienceInternal {
		done, total := SelectionCounts(p)
		fmt.Fprintf(&head, "%s  %s  %s\n", StatusPill(p.Status), RenderProgress(done, total, 10), Dim(p.ID))
	}
	head.WriteString("\n" + intro)
	b.WriteString(RenderBox("Program", head.String()))
	b.WriteString("\n\n")

	for _, d := range p.Days {
		b.WriteString(formatDay(d, audience))
		b.WriteString("\n")
	}

	b.WriteString(Dim(closing) + "\n")
	return b.String()
}

func formatDay(d domain.ProgramDay, audience Audience) string {
	var b strings.Builder

	title := fmt.Sprintf("Jour %d", d.DayNumber)
	if d.ActualDate != nil {
		title += " · " + d.ActualDate.Format("02/01/2006")
	}
	theme := d.ThemeInternal
	if audience == AudienceClient {
		theme = d.ThemeClient
	}
	if theme != "" {
		title += " · " + theme
	}
	b.WriteString(Header(title) + "\n")
	if audience == AudienceInternal {
		b.WriteString(Dim("day "+d.ID) + "\n")
	}

	for i := range d.Activities {
		b.WriteString(FormatSlot(&d.Activities[i], audience))
	}
	return b.String()
}

// FormatSlot renders one slot and its options.
func FormatSlot(s *domain.ActivitySlot, audience Audience) string {
	var b strings.Builder

	label := slotLabels[s.TimeSlot]
	if label == "" {
		label = string(s.TimeSlot)
	}
	line := fmt.Sprintf("  %s  %-10s", StyleYellow.Render(s.EffectiveTime()), label)
	switch {
	case s.IsRest:
		line += "  " + Dim("repos")
	case s.Category != "":
		line += "  " + CategoryBadge(s.Category)
	}
	if audience == AudienceInternal {
		if badge := VerificationBadge(s.VerificationStatus); badge != "" {
			line += "  " + badge
		}
		line += "  " + Dim(s.ID)
	}
	b.WriteString(line + "\n")

	if !s.IsRest {
		options := s.Options
		if audience == AudienceClient {
			if selected := s.Selected(); len(selected) > 0 {
				options = selected
			}
		}
		for _, o := range options {
			b.WriteString(formatOption(o, audience))
		}
	}
	if audience == AudienceInternal && s.ConciergeNotes != "" {
		b.WriteString("      " + StylePurple.Render("note: "+s.ConciergeNotes) + "\n")
	}
	return b.String()
}

func formatOption(o domain.ActivityOption, audience Audience) string {
	marker := Dim("○")
	if o.IsSelected {
		marker = StyleGreen.Render("●")
	}
	line := fmt.Sprintf("    %s %s", marker, StyleFg.Render(o.VenueName))
	if o.SubCategory != "" {
		line += " " + Dim("("+o.SubCategory+")")
	}
	if o.IsEiffelView {
		line += " " + StyleBlue.Render("vue tour Eiffel")
	}
	if o.ReservationRequired {
		line += " " + StyleYellow.Render("réservation")
	}
	if audience == AudienceInternal {
		line += "  " + Dim(o.ID)
	}
	line += "\n"
	if o.Address != "" {
		line += "      " + Dim(o.Address) + "\n"
	}
	return line
}

// FormatProgramList renders stored program headers as a table.
func FormatProgramList(programs []repository.ProgramSummary) string {
	if len(programs) == 0 {
		return Dim("No programs.") + "\n"
	}
	headers := []string{"ID", "TITLE", "CITY", "DAYS", "START", "STATUS"}
	rows := make([][]string, 0, len(programs))
	for _, p := range programs {
		rows = append(rows, []string{
			p.ID,
			p.Title,
			p.City,
			fmt.Sprintf("%d", p.Duration),
			DateOrDash(p.StartDate),
			StatusPill(p.Status),
		})
	}
	return RenderTable(headers, rows)
}
