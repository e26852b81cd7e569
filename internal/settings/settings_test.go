package settings

import "testing"

func TestDefault(t *testing.T) {
	d := Default()
	if d.BorderRadius != Radius2XL {
		t.Errorf("BorderRadius = %q, want 2xl", d.BorderRadius)
	}
	if d.AccentColor != Indigo {
		t.Errorf("AccentColor = %q, want indigo", d.AccentColor)
	}
}

func TestNormalize_KeepsValidValues(t *testing.T) {
	s := Settings{BorderRadius: Radius3XL, AccentColor: Rose}
	if got := s.Normalize(); got != s {
		t.Errorf("Normalize changed valid settings: %+v", got)
	}
}

func TestNormalize_ReplacesUnknownValues(t *testing.T) {
	s := Settings{BorderRadius: "round", AccentColor: "chartreuse"}
	got := s.Normalize()
	if got != Default() {
		t.Errorf("Normalize = %+v, want defaults", got)
	}
}
