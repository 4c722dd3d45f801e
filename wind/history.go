package wind

import (
	"math"
	"time"

	"github.com/a-bouts/regatta/latlon"
)

// HistoryLimit is the number of observations a History keeps.
const HistoryLimit = 5

// History holds the latest observations, most recent first.
type History []Information

// Add records w if it is newer than every observation already in the
// history, dropping the oldest observation when the history is full. It
// reports whether w was recorded.
func (h *History) Add(w Information) bool {
	if len(*h) > 0 && !w.StartTime.After((*h)[0].StartTime) {
		return false
	}
	updated := append(History{w}, *h...)
	if len(updated) > HistoryLimit {
		updated = updated[:HistoryLimit]
	}
	*h = updated
	return true
}

func (h History) Latest() (Information, bool) {
	if len(h) == 0 {
		return Information{}, false
	}
	return h[0], true
}

func (h History) mostRecent() time.Time {
	var latest time.Time
	for i, w := range h {
		if i == 0 || w.StartTime.After(latest) {
			latest = w.StartTime
		}
	}
	return latest
}

// ForWeighted calls action with every observation and its weight. The
// weight halves every halfLife seconds before the most recent observation.
// With a halfLife of zero or less only the most recent observation counts.
func (h History) ForWeighted(halfLife float64, action func(w Information, weight float64)) {
	if len(h) == 0 {
		return
	}
	if halfLife <= 0 {
		action(h[0], 1)
		return
	}
	latest := h.mostRecent()
	for _, w := range h {
		Δt := latest.Sub(w.StartTime).Seconds()
		action(w, math.Exp2(-Δt/halfLife))
	}
}

// WeightedAverageDirection averages the observed directions as vectors so
// that 359 and 1 average to 0. ok is false when the history is empty.
func (h History) WeightedAverageDirection(halfLife float64) (direction latlon.Direction, ok bool) {
	var origin, sum latlon.Point
	h.ForWeighted(halfLife, func(w Information, weight float64) {
		sum = sum.Project(w.Direction, weight)
		ok = true
	})
	if !ok {
		return 0, false
	}
	return origin.Bearing(sum), true
}
