package ui

// Color* functions return the ANSI escape code for the named role in the
// currently active theme. They let call sites in cli/presenter stay
// terse ("%s%s%s", ui.ColorRed(), msg, ui.ColorReset()) without reaching
// into Theme fields directly, and they stay correct across SetTheme calls
// since they read the theme under the package's lock on every call.

// ColorRed returns the escape code for error/failure text.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the escape code for success text.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the escape code for warning/caution text.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the escape code for primary accent text.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the escape code for informational text.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan returns the escape code for secondary accent text.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the escape code for underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
