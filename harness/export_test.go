package harness

import "time"

// SetClock replaces the runner's time source.
func (r *Runner) SetClock(now func() time.Time) { r.now = now }
