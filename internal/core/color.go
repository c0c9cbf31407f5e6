package core

// Color is a terminal color for a screen cell: either a "#rrggbb" hex value
// or an ANSI 256-color code such as "245". The empty Color means the
// terminal's default.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorStar    Color = "#94a3b8"
	ColorVisor   Color = "#3b82f6"
	ColorFlame   Color = "#f59e0b"
	ColorHUD     Color = "#e2e8f0"
	ColorAccent  Color = "#facc15"
	ColorDanger  Color = "#ef4444"
	ColorMuted   Color = "245"
	ColorPanel   Color = "#1e293b"
)
