package theme

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/settings"
)

func TestApplyAccentPalette(t *testing.T) {
	defer Apply(settings.Default())

	Apply(settings.Settings{AccentColor: settings.Teal, BorderRadius: settings.Radius2XL})
	if Accent500 != lipgloss.Color("#14B8A6") {
		t.Errorf("Accent500 = %v, want teal", Accent500)
	}

	Apply(settings.Settings{AccentColor: settings.Rose, BorderRadius: settings.Radius2XL})
	if Accent500 != lipgloss.Color("#F43F5E") {
		t.Errorf("Accent500 = %v, want rose", Accent500)
	}
}

func TestApplyBorderRadius(t *testing.T) {
	defer Apply(settings.Default())

	Apply(settings.Settings{AccentColor: settings.Indigo, BorderRadius: settings.RadiusLG})
	if CardBorder != lipgloss.NormalBorder() {
		t.Error("lg radius should map to the normal border")
	}

	Apply(settings.Settings{AccentColor: settings.Indigo, BorderRadius: settings.Radius3XL})
	if CardBorder != lipgloss.DoubleBorder() {
		t.Error("3xl radius should map to the double border")
	}
}

func TestApplyNormalizesUnknownSettings(t *testing.T) {
	defer Apply(settings.Default())

	Apply(settings.Settings{AccentColor: "chartreuse", BorderRadius: "square"})
	if Accent500 != lipgloss.Color("#6366F1") {
		t.Errorf("Accent500 = %v, want indigo default", Accent500)
	}
	if CardBorder != lipgloss.RoundedBorder() {
		t.Error("unknown radius should fall back to rounded")
	}
}
