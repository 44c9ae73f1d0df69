package tree

import "fmt"

// FormatMinutes renders a duration in minutes as "1h30m", "1h" or "45m".
// Non-positive values render as "0m".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// FormatSeconds renders seconds like FormatMinutes. Leftover seconds below a
// full minute are not shown.
func FormatSeconds(seconds int) string {
	return FormatMinutes(seconds / 60)
}

// FormatClock renders seconds as a running stopwatch, e.g. "1:02:05" or "02:05".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, (seconds%3600)/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
