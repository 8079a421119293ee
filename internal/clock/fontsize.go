package clock

import "math"

const (
	FontScale   = 0.18
	MinFontSize = 28
	MaxFontSize = 120
)

// FontSize derives the time text size from the smaller window dimension.
// The result is always an integer value in [MinFontSize, MaxFontSize].
func FontSize(width, height float32) float32 {
	smaller := math.Min(float64(width), float64(height))
	if smaller < 0 || math.IsNaN(smaller) {
		smaller = 0
	}

	base := int(math.Floor(smaller * FontScale))
	if base > MaxFontSize {
		base = MaxFontSize
	}
	if base < MinFontSize {
		base = MinFontSize
	}

	return float32(base)
}
