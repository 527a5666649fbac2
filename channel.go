package imageproc

import (
	"fmt"
	"strings"
)

// Channel selects a single-number projection of an RGB pixel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
	Value     // max(r, g, b)
	Intensity // mean of the three channels
	Luma      // Rec. 709 weighted sum
)

var channelNames = [...]string{
	Red:       "red",
	Green:     "green",
	Blue:      "blue",
	Value:     "value",
	Intensity: "intensity",
	Luma:      "luma",
}

func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// ParseChannel maps a case-insensitive channel name to its Channel.
func ParseChannel(name string) (Channel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range channelNames {
		if n == name {
			return Channel(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}

// isColor reports whether c names one of the three stored channels.
func (c Channel) isColor() bool {
	return c == Red || c == Green || c == Blue
}
