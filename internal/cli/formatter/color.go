package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored indicator for a program status.
func StatusPill(status domain.ProgramStatus) string {
	switch status {
	case domain.ProgramValidated:
		return StyleGreen.Render("✔ Validated")
	case domain.ProgramDraft:
		return StyleYellow.Render("○ Draft")
	default:
		return StyleDim.Render(string(status))
	}
}

// VerificationBadge marks slots that need a concierge's attention. Pending
// slots render as an empty string.
func VerificationBadge(status domain.VerificationStatus) string {
	switch status {
	case domain.VerificationNeedsAttention:
		return StyleRed.Render("▲ needs attention")
	case domain.VerificationVerified:
		return StyleGreen.Render("✔ verified")
	default:
		return ""
	}
}

// CategoryBadge returns the category name in the color used for its family.
func CategoryBadge(c domain.Category) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	switch c {
	case domain.CategoryRestaurants:
		return StyleYellow.Render(string(c))
	case domain.CategoryMuseums, domain.CategoryActivities:
		return StyleBlue.Render(string(c))
	case domain.CategoryNightlife, domain.CategoryShopping:
		return StylePurple.Render(string(c))
	default:
		return StyleGreen.Render(string(c))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
