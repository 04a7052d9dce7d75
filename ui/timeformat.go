package ui

import (
	"fmt"
	"time"
)

// CountdownLabels are the localized parts of a countdown.
type CountdownLabels struct {
	TMinus    string
	Days      string
	Hours     string
	Mins      string
	Secs      string
	Concluded string
}

// FormatCountdown formats the time left until target.
// Example: "T-MINUS: 3D 04H 05M 06S". Once target has passed it returns
// labels.Concluded and true.
func FormatCountdown(now, target time.Time, labels CountdownLabels) (string, bool) {
	diff := target.Sub(now)
	if diff < 0 {
		return labels.Concluded, true
	}

	days := int(diff / (24 * time.Hour))
	hours := int(diff % (24 * time.Hour) / time.Hour)
	mins := int(diff % time.Hour / time.Minute)
	secs := int(diff % time.Minute / time.Second)
	return fmt.Sprintf("%s: %d%s %02d%s %02d%s %02d%s",
		labels.TMinus,
		days, labels.Days,
		hours, labels.Hours,
		mins, labels.Mins,
		secs, labels.Secs), false
}

// FormatClock formats the top bar clock in 24 hour time.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}
