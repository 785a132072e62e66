package fieldtype

import (
	"testing"
	"time"
)

// pinClock fixes the current year used by the expiration window.
func pinClock(t *testing.T, year int) {
	t.Helper()
	prev := clock
	clock = func() time.Time { return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { clock = prev })
}
