package wallet

import (
	"sync"
	"time"
)

// Animation parameters: a 1.8 second count-up sampled at 40 steps.
const (
	Duration     = 1800 * time.Millisecond
	Steps        = 40
	StepInterval = Duration / Steps
)

// Scheduler runs a callback at a fixed interval until the returned cancel
// function is called. It exists so tests can drive animation steps by hand
// instead of sleeping through real tickers.
type Scheduler interface {
	Schedule(interval time.Duration, fn func()) (cancel func())
}

// TickScheduler is the production Scheduler backed by time.Ticker.
type TickScheduler struct{}

// Schedule starts a goroutine invoking fn every interval. Cancel is safe to
// call more than once and from within fn.
func (TickScheduler) Schedule(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
