package theme

// Centralized theming for the area selection UI. Provides palette constants
// and InitStyles to activate a base theme and configure semantic styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, readouts
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // buttons, accents
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleStateLabel    = "state.TLabel"
	StyleOutputLabel   = "output.TLabel"
)

var darkMode bool

// InitStyles (re)applies styles for the current darkMode value.
func InitStyles() { applyStyles(darkMode) }

// SetDark switches the mode and reapplies styles. Returns the new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles(darkMode)
	return darkMode
}

// ToggleDark flips dark mode and reapplies styles. Returns the new mode value.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports current mode.
func IsDark() bool { return darkMode }

func applyStyles(dark bool) {
	if dark {
		_ = ActivateTheme("azure dark")
		App.Configure(Background("#0f172a"))
	} else {
		_ = ActivateTheme("azure light")
		App.Configure(Background(ColorBg))
	}

	pick := func(darkVal, lightVal string) string {
		if dark {
			return darkVal
		}
		return lightVal
	}

	StyleConfigure(StylePrimaryButton,
		Background(pick("#3b82f6", ColorPrimary)),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground(pick("#f0fdf4", "white")),
		Background(pick("#10b981", ColorAccent)),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
	StyleConfigure(StyleOutputLabel,
		Foreground(pick("#3b82f6", ColorPrimary)),
		Background(pick("#1e293b", ColorSurface)),
		Padding("2p 1p"),
	)
}
