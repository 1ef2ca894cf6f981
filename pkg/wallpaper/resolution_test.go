package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input    string
		expected Resolution
		wantErr  bool
	}{
		{"1920x1080", Resolution{1920, 1080}, false},
		{"3840x2160", Resolution{3840, 2160}, false},
		{"1x1", Resolution{1, 1}, false},
		{"1920", Resolution{}, true},
		{"x1080", Resolution{}, true},
		{"1920x", Resolution{}, true},
		{"abcxdef", Resolution{}, true},
		{"", Resolution{}, true},
		{"0x1080", Resolution{}, true},
		{"1920x0", Resolution{}, true},
		{"-1920x1080", Resolution{}, true},
		{"1920X1080", Resolution{}, true},
		{"1920x1080 ", Resolution{}, true},
	}

	for _, tt := range tests {
		res, err := ParseResolution(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input: %q", tt.input)
		} else {
			assert.NoError(t, err, "input: %q", tt.input)
			assert.Equal(t, tt.expected, res, "input: %q", tt.input)
		}
	}
}

func TestResolutionString(t *testing.T) {
	assert.Equal(t, "1920x1080", Resolution{1920, 1080}.String())
}
