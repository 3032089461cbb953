package countdown

import (
	"fmt"
	"time"

	model "storage-auctions/internal/models"
)

// UrgentWindow is the remaining time under which a countdown is flagged urgent
const UrgentWindow = 24 * time.Hour

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Remaining computes the countdown display for a listing ending at endTime,
// sampled at now. The display drops to finer granularity as the auction nears
// its end: "2d 4h 30m", then "4h 30m 12s", then "30m 12s".
func Remaining(endTime, now time.Time) model.TimeRemaining {
	difference := endTime.Sub(now).Milliseconds()

	if difference <= 0 {
		return model.TimeRemaining{Display: "Auction Ended", Urgent: false}
	}

	days := difference / msPerDay
	hours := (difference % msPerDay) / msPerHour
	minutes := (difference % msPerHour) / msPerMinute
	seconds := (difference % msPerMinute) / msPerSecond

	urgent := difference < UrgentWindow.Milliseconds()

	if days > 0 {
		return model.TimeRemaining{Display: fmt.Sprintf("%dd %dh %dm", days, hours, minutes), Urgent: urgent}
	}
	if hours > 0 {
		return model.TimeRemaining{Display: fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds), Urgent: urgent}
	}
	return model.TimeRemaining{Display: fmt.Sprintf("%dm %ds", minutes, seconds), Urgent: true}
}

// Ended reports whether the auction clock has run out at the given sample time
func Ended(endTime, now time.Time) bool {
	return !endTime.After(now)
}
