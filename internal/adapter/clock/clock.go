package clock

import "time"

// System implements port.Clock over the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }
