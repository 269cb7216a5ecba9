package schedulers

import "time"

// SetNow pins the runner's clock in tests.
func SetNow(r BatchRunner, now func() time.Time) {
	r.(*batchRunner).now = now
}
