// Package progressbar renders the mint command's progress callback as a
// terminal progress bar, adapted from the teacher CLI's utils.ProgressBar.
// Where the teacher bar tracked a current/total operation count, this one
// tracks the percent-in-[0,100] the core API reports, since eval/proof
// Progress callbacks deal in percentages rather than raw counts.
package progressbar

import (
	"fmt"
	"time"
)

// Bar is a simple terminal progress bar.
type Bar struct {
	startTime time.Time
	lastPrint time.Time
	width     int
	label     string
}

// New creates a Bar labeled with the phase it reports on (e.g.
// "evaluation", "proof").
func New(label string) *Bar {
	now := time.Now()
	return &Bar{startTime: now, lastPrint: now, width: 40, label: label}
}

// Update renders the bar at the given percent, throttled to avoid flooding
// the terminal with updates faster than every 100ms.
func (b *Bar) Update(percent uint8) {
	now := time.Now()
	if now.Sub(b.lastPrint) < 100*time.Millisecond && percent < 100 {
		return
	}
	b.lastPrint = now
	b.print(percent)
	if percent == 100 {
		fmt.Println()
	}
}

func (b *Bar) print(percent uint8) {
	filled := int(float64(b.width) * float64(percent) / 100)

	bar := "["
	for i := 0; i < b.width; i++ {
		switch {
		case i < filled:
			bar += "="
		case i == filled && filled < b.width:
			bar += ">"
		default:
			bar += " "
		}
	}
	bar += "]"

	elapsed := time.Since(b.startTime).Round(time.Second)
	fmt.Printf("\r%-10s %s %3d%% elapsed %v", b.label, bar, percent, elapsed)
}

// EstimateDuration scales a rate in operations/second to the time a given
// iteration count is expected to take.
func EstimateDuration(iterations uint64, opsPerSecond float64) time.Duration {
	if opsPerSecond <= 0 {
		return 0
	}
	return time.Duration(float64(iterations) / opsPerSecond * float64(time.Second))
}

// FormatDuration renders a duration at whichever unit keeps it readable,
// matching the teacher CLI's formatting convention.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	case d < 24*time.Hour:
		return fmt.Sprintf("%.1fh", d.Hours())
	default:
		return fmt.Sprintf("%.1fd", d.Hours()/24)
	}
}
