package clock

import "time"

// DisplayLayout renders zero-padded 24-hour wall-clock time without zone or fraction.
const DisplayLayout = "15:04:05"

// Placeholder is shown until the first refresh tick lands.
const Placeholder = "--:--:--"

func FormatTime(t time.Time) string {
	return t.Format(DisplayLayout)
}
