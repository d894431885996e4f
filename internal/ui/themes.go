package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps the roles of primecalc's terminal output to ANSI escape codes.
// An empty code leaves that role uncolored.
type Theme struct {
	Name string
	// RunName colors run labels ("Parallel (8 workers)") and table headings.
	RunName string
	// Header colors the execution configuration block.
	Header string
	// Agree marks prime counts and the global success line.
	Agree string
	// Timing marks durations and the sum overflow notice.
	Timing string
	// Failure marks worker failures and count or sum mismatches.
	Failure string
	// Number marks speed-ups and other figures.
	Number    string
	Underline string
	Reset     string
}

var (
	// DarkTheme is the default 256-color palette.
	DarkTheme = Theme{
		Name:      "dark",
		RunName:   "\033[38;5;39m",
		Header:    "\033[38;5;245m",
		Agree:     "\033[38;5;82m",
		Timing:    "\033[38;5;220m",
		Failure:   "\033[38;5;196m",
		Number:    "\033[38;5;51m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme leaves every role uncolored.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme is the lipgloss palette of the dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUITheme goes with DarkTheme.
	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#3B82F6"),
		Accent:  lipgloss.Color("#22D3EE"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTheme returns the active terminal theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// GetCurrentTUITheme returns the dashboard palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme picks the theme once at startup: colors are off when noColor is
// set (--no-color, PRIMECALC_NO_COLOR) or when NO_COLOR is present in the
// environment with any value (https://no-color.org/).
func InitTheme(noColor bool) {
	_, envNoColor := os.LookupEnv("NO_COLOR")
	if noColor || envNoColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
