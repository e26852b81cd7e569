// Package theme holds the lipgloss styles shared by all screens. The
// accent palette and border shape follow the user's settings; call
// Apply after loading or changing them.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/settings"
)

// Accent palette, rebuilt by Apply.
var (
	Accent400 = lipgloss.Color("#818CF8")
	Accent500 = lipgloss.Color("#6366F1")
	Accent600 = lipgloss.Color("#4F46E5")
)

// Fixed palette
var (
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgDark  = lipgloss.Color("#0F172A") // Deep Navy
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate
	Free    = lipgloss.Color("#22C55E") // FREE resource tag
	Paid    = lipgloss.Color("#F59E0B") // PAID resource tag
)

// CardBorder is the border shape for cards, per the radius setting.
var CardBorder = lipgloss.RoundedBorder()

// accentPalettes maps each accent color setting to its 400/500/600 shades.
var accentPalettes = map[settings.AccentColor][3]color.Color{
	settings.Indigo: {lipgloss.Color("#818CF8"), lipgloss.Color("#6366F1"), lipgloss.Color("#4F46E5")},
	settings.Teal:   {lipgloss.Color("#2DD4BF"), lipgloss.Color("#14B8A6"), lipgloss.Color("#0D9488")},
	settings.Rose:   {lipgloss.Color("#FB7185"), lipgloss.Color("#F43F5E"), lipgloss.Color("#E11D48")},
}

// borders maps the radius setting to a lipgloss border shape.
var borders = map[settings.BorderRadius]lipgloss.Border{
	settings.RadiusLG:  lipgloss.NormalBorder(),
	settings.Radius2XL: lipgloss.RoundedBorder(),
	settings.Radius3XL: lipgloss.DoubleBorder(),
}

// Apply rebuilds the derived styles from the given settings.
func Apply(cfg settings.Settings) {
	cfg = cfg.Normalize()

	palette := accentPalettes[cfg.AccentColor]
	Accent400, Accent500, Accent600 = palette[0], palette[1], palette[2]
	CardBorder = borders[cfg.BorderRadius]

	rebuild()
}

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Checked    lipgloss.Style
	Locked     lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
)

func rebuild() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent500).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(CardBorder).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Accent400).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Checked = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	ProgressFilled = lipgloss.NewStyle().
		Background(Accent500)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)
}

func init() {
	rebuild()
}
