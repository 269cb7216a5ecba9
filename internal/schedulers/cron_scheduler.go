package schedulers

import (
	"time"

	"github.com/robfig/cron/v3"
)

// EntryID identifies one registered recurring job.
type EntryID = cron.EntryID

// CronScheduler registers recurring jobs. The daily trigger depends on this
// abstraction rather than the timer library directly so tests can fire the
// callback deterministically instead of waiting for wall-clock midnight.
//
//go:generate mockgen -source=cron_scheduler.go -destination=./mocks/cron_scheduler_mock.go -package=mocks
type CronScheduler interface {
	Schedule(spec string, job func()) (EntryID, error)
	Remove(id EntryID)
	// Stop prevents future firings; it does not interrupt a running job.
	Stop()
}

type cronScheduler struct {
	cron *cron.Cron
}

// NewCronScheduler returns a scheduler that evaluates cron specs in UTC,
// regardless of the host timezone, so deployments behave identically in every
// region.
func NewCronScheduler() CronScheduler {
	c := cron.New(cron.WithLocation(time.UTC))
	c.Start()
	return &cronScheduler{cron: c}
}

func (s *cronScheduler) Schedule(spec string, job func()) (EntryID, error) {
	return s.cron.AddFunc(spec, job)
}

func (s *cronScheduler) Remove(id EntryID) {
	s.cron.Remove(id)
}

func (s *cronScheduler) Stop() {
	s.cron.Stop()
}
