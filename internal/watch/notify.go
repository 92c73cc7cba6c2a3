package watch

import (
	"time"
)

// DefaultQuietPeriod is how long a burst of writes must settle before a
// change is reported. A single sqlite commit touches the database and its
// WAL several times.
const DefaultQuietPeriod = 150 * time.Millisecond

// Notify calls fn with the last change of every burst, once no further
// change arrived for quiet. It returns when changes is closed, flushing a
// pending change first.
func Notify(changes <-chan Change, quiet time.Duration, fn func(Change)) {
	var (
		pending *Change
		timer   *time.Timer
		fire    <-chan time.Time
	)
	for {
		select {
		case c, ok := <-changes:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				if pending != nil {
					fn(*pending)
				}
				return
			}
			pending = &c
			if timer == nil {
				timer = time.NewTimer(quiet)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(quiet)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if pending != nil {
				fn(*pending)
				pending = nil
			}
		}
	}
}
