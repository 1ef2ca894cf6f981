package desktop

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dixieflatline76/Terra/util/log"
)

// ErrNoMethod is returned when neither the environment-specific
// mechanism nor the feh fallback could set the wallpaper. Callers treat
// it as a warning: the wallpaper file itself was produced successfully.
var ErrNoMethod = errors.New("no wallpaper method worked")

// kdeScript rewrites the wallpaper plugin configuration of every Plasma
// desktop to point at the new file.
const kdeScript = `var allDesktops = desktops();
for (i=0;i<allDesktops.length;i++) {
    d = allDesktops[i];
    d.wallpaperPlugin = "org.kde.image";
    d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
    d.writeConfig("Image", "file://%s");
}`

// Setter applies a wallpaper file using the mechanism native to the
// detected desktop environment.
type Setter struct {
	runner Runner
	getenv func(string) string
}

// NewSetter returns a Setter wired to the real environment and tools.
func NewSetter() *Setter {
	return &Setter{runner: execRunner{}, getenv: os.Getenv}
}

// branchResult is the outcome of one environment-specific attempt.
type branchResult struct {
	applied     bool
	toolMissing bool
}

// Apply sets the image at path as the desktop background. It makes a
// single pass: the branch for the detected environment, then the feh
// fallback. It never fails hard; a run where nothing worked returns
// ErrNoMethod wrapped with the detected environment and the manual path.
func (s *Setter) Apply(path string) error {
	env := Detect(s.getenv)

	var res branchResult
	switch env.Family {
	case GNOME:
		res = s.applyGNOME(path, strings.Contains(env.Raw, "cinnamon"))
	case MATE:
		res = s.applyMATE(path)
	case XFCE:
		res = s.applyXFCE(path)
	case KDE:
		res = s.applyKDE(path)
	default:
		res = branchResult{toolMissing: true}
	}

	if res.applied {
		return nil
	}

	// Generic X11 fallback. Always succeeds if feh is installed and the
	// file is a valid image.
	if _, err := s.runner.LookPath("feh"); err == nil {
		err := s.runner.Run("feh", "--bg-fill", path)
		if err == nil {
			return nil
		}
		log.Printf("feh fallback failed: %v", err)
	}

	return fmt.Errorf("%w: desktop %s detected, set %s as wallpaper manually", ErrNoMethod, env.Family, path)
}

// applyGNOME sets the GNOME background keys. Each key set is
// best-effort; the branch succeeds as long as gsettings exists.
func (s *Setter) applyGNOME(path string, cinnamon bool) branchResult {
	if _, err := s.runner.LookPath("gsettings"); err != nil {
		return branchResult{toolMissing: true}
	}

	uri := "file://" + path
	keys := [][2]string{
		{"org.gnome.desktop.background", "picture-uri"},
		{"org.gnome.desktop.background", "picture-uri-dark"},
	}
	if cinnamon {
		keys = append(keys, [2]string{"org.cinnamon.desktop.background", "picture-uri"})
	}

	for _, k := range keys {
		if err := s.runner.Run("gsettings", "set", k[0], k[1], uri); err != nil {
			log.Printf("gsettings set %s %s failed: %v", k[0], k[1], err)
		}
	}
	return branchResult{applied: true}
}

// applyMATE sets the MATE background. Unlike GNOME this key takes a raw
// path, and its failure is terminal for the branch.
func (s *Setter) applyMATE(path string) branchResult {
	if _, err := s.runner.LookPath("gsettings"); err != nil {
		return branchResult{toolMissing: true}
	}

	if err := s.runner.Run("gsettings", "set", "org.mate.background", "picture-filename", path); err != nil {
		log.Printf("gsettings set org.mate.background picture-filename failed: %v", err)
		return branchResult{}
	}
	return branchResult{applied: true}
}

// applyXFCE rewrites every per-screen/per-monitor image property on the
// xfce4-desktop channel. No matching properties means this branch did
// not work.
func (s *Setter) applyXFCE(path string) branchResult {
	if _, err := s.runner.LookPath("xfconf-query"); err != nil {
		return branchResult{toolMissing: true}
	}

	out, err := s.runner.Output("xfconf-query", "--channel", "xfce4-desktop", "--list")
	if err != nil {
		log.Printf("xfconf-query list failed: %v", err)
		return branchResult{}
	}

	var props []string
	for _, line := range strings.Split(out, "\n") {
		prop := strings.TrimSpace(line)
		if strings.HasSuffix(prop, "/last-image") || strings.HasSuffix(prop, "/image-path") {
			props = append(props, prop)
		}
	}
	if len(props) == 0 {
		log.Printf("No xfce4-desktop image properties found")
		return branchResult{}
	}

	applied := false
	for _, prop := range props {
		if err := s.runner.Run("xfconf-query", "--channel", "xfce4-desktop", "--property", prop, "--set", path); err != nil {
			log.Printf("xfconf-query set %s failed: %v", prop, err)
		} else {
			applied = true
		}
	}
	return branchResult{applied: applied}
}

// applyKDE evaluates a script against the running Plasma shell. A failed
// evaluation is logged but does not fail the branch; qdbus being present
// is the success signal we have.
func (s *Setter) applyKDE(path string) branchResult {
	if _, err := s.runner.LookPath("qdbus"); err != nil {
		return branchResult{toolMissing: true}
	}

	script := fmt.Sprintf(kdeScript, path)
	if err := s.runner.Run("qdbus", "org.kde.plasmashell", "/PlasmaShell", "org.kde.PlasmaShell.evaluateScript", script); err != nil {
		log.Printf("Plasma script evaluation failed: %v", err)
	}
	return branchResult{applied: true}
}
