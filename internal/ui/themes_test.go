package ui

import (
	"os"
	"testing"
)

func TestInitTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Run("no-color flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" || ColorRed() != "" || ColorReset() != "" {
			t.Error("expected the no-color theme")
		}
		if GetCurrentTUITheme() != NoColorTUITheme {
			t.Error("expected the no-color TUI palette")
		}
	})

	t.Run("NO_COLOR environment variable", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("default is dark", func(t *testing.T) {
		if _, set := os.LookupEnv("NO_COLOR"); set {
			t.Skip("NO_COLOR set in the environment")
		}
		InitTheme(false)
		if GetCurrentTheme().Name != "dark" || ColorGreen() == "" {
			t.Error("expected the dark theme")
		}
		if GetCurrentTUITheme() != DarkTUITheme {
			t.Error("expected the dark TUI palette")
		}
	})
}
