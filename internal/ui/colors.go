package ui

// ColorRed returns the escape code for failures.
func ColorRed() string { return GetCurrentTheme().Failure }

// ColorGreen returns the escape code for agreeing results.
func ColorGreen() string { return GetCurrentTheme().Agree }

// ColorYellow returns the escape code for timings and warnings.
func ColorYellow() string { return GetCurrentTheme().Timing }

// ColorBlue returns the escape code for run names.
func ColorBlue() string { return GetCurrentTheme().RunName }

// ColorCyan returns the escape code for figures.
func ColorCyan() string { return GetCurrentTheme().Number }

// ColorGrey returns the escape code for the execution header.
func ColorGrey() string { return GetCurrentTheme().Header }

// ColorUnderline returns the escape code for underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the escape code clearing all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
