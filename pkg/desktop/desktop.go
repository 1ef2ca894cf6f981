// Package desktop applies a wallpaper file across Linux desktop
// environments, falling back to a generic X11 setter when no
// environment-specific mechanism is available.
package desktop

import "strings"

// Family classifies the active desktop environment. Exactly one family
// is chosen per run.
type Family int

const (
	// Unknown means no recognized desktop identifier was found.
	Unknown Family = iota
	// GNOME covers GNOME, Cinnamon, Unity and stock Ubuntu sessions.
	GNOME
	// MATE is the MATE desktop.
	MATE
	// XFCE is the XFCE desktop.
	XFCE
	// KDE covers KDE Plasma sessions.
	KDE
)

// String returns a human-readable family name for log and warning output.
func (f Family) String() string {
	switch f {
	case GNOME:
		return "GNOME family"
	case MATE:
		return "MATE"
	case XFCE:
		return "XFCE"
	case KDE:
		return "KDE Plasma"
	default:
		return "unknown"
	}
}

// Environment is the detected desktop session.
type Environment struct {
	Family Family
	// Raw is the lowercased identifier the family was classified from.
	// GNOME-family handling needs it to spot Cinnamon sessions.
	Raw string
}

// Detect reads the desktop identifier from XDG_CURRENT_DESKTOP, falling
// back to DESKTOP_SESSION, and classifies it.
func Detect(getenv func(string) string) Environment {
	raw := getenv("XDG_CURRENT_DESKTOP")
	if raw == "" {
		raw = getenv("DESKTOP_SESSION")
	}
	raw = strings.ToLower(raw)
	return Environment{Family: Classify(raw), Raw: raw}
}

// Classify matches the lowercased desktop identifier against ordered
// substring patterns. First match wins.
func Classify(s string) Family {
	switch {
	case s == "":
		return Unknown
	case strings.Contains(s, "gnome") || strings.Contains(s, "cinnamon") ||
		strings.Contains(s, "unity") || strings.Contains(s, "ubuntu"):
		return GNOME
	case strings.Contains(s, "mate"):
		return MATE
	case strings.Contains(s, "xfce"):
		return XFCE
	case strings.Contains(s, "kde") || strings.Contains(s, "plasma"):
		return KDE
	default:
		return Unknown
	}
}
