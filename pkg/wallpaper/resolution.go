package wallpaper

import (
	"fmt"
	"regexp"
	"strconv"
)

// resolutionRe is the accepted CLI resolution format.
var resolutionRe = regexp.MustCompile(`^([0-9]+)x([0-9]+)$`)

// Resolution represents a target wallpaper resolution.
type Resolution struct {
	Width, Height int
}

// String renders the resolution in the canonical WIDTHxHEIGHT form.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ParseResolution parses a WIDTHxHEIGHT string (e.g. "1920x1080") into a
// Resolution. Both dimensions must be positive integers.
func ParseResolution(s string) (Resolution, error) {
	m := resolutionRe.FindStringSubmatch(s)
	if m == nil {
		return Resolution{}, fmt.Errorf("invalid resolution %q: expected WIDTHxHEIGHT, e.g. 1920x1080", s)
	}

	w, err := strconv.Atoi(m[1])
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}

	if w <= 0 || h <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution %q: dimensions must be positive", s)
	}

	return Resolution{Width: w, Height: h}, nil
}
