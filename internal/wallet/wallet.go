// Package wallet implements the credit ledger shown on the wallet page: a
// fixed base balance plus session-only bonus credits earned from scans, an
// animated displayed balance that eases toward the real total, and the
// lifetime tier bands. Nothing here is persisted; the ledger resets to its
// base values on restart.
package wallet

import (
	"math"
	"sync"

	"ecosnap/internal/models"
)

// Base balances rendered by the wallet page. Bonus credits accumulate on
// top of these for the lifetime of the process.
const (
	BaseCredits     = 892
	baseTotalEarned = 1247
	baseRedeemed    = 355
	baseLifetime    = 3456
	pendingCredits  = 45
	baseThisWeek    = 87
	lastWeek        = 62
)

// Ledger accumulates bonus credits and animates the displayed balance.
type Ledger struct {
	mu        sync.Mutex
	bonus     int
	displayed int
	animating bool

	sched  Scheduler
	cancel func()
	gen    int
}

// NewLedger returns a Ledger using the given Scheduler for animation steps.
// The displayed balance starts at the base value.
func NewLedger(sched Scheduler) *Ledger {
	return &Ledger{sched: sched, displayed: BaseCredits}
}

// Available returns the real balance: base plus accumulated bonus.
func (l *Ledger) Available() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return BaseCredits + l.bonus
}

// AddBonus credits a scan reward and starts the count-up animation from the
// currently displayed value toward the new total. An in-flight animation is
// superseded.
func (l *Ledger) AddBonus(amount int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bonus += amount
	l.startAnimationLocked()
}

// Displayed returns the animated balance as currently rendered.
func (l *Ledger) Displayed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.displayed
}

// Snapshot assembles the full wallet view, including the derived weekly
// growth and tier progress.
func (l *Ledger) Snapshot() models.WalletResponse {
	l.mu.Lock()
	defer l.mu.Unlock()

	thisWeek := baseThisWeek + l.bonus
	lifetime := baseLifetime + l.bonus
	growth := int(math.Round(float64(thisWeek-lastWeek) / float64(lastWeek) * 100))

	return models.WalletResponse{
		Available:    BaseCredits + l.bonus,
		Displayed:    l.displayed,
		BonusCredits: l.bonus,
		TotalEarned:  baseTotalEarned + l.bonus,
		Redeemed:     baseRedeemed,
		Lifetime:     lifetime,
		Pending:      pendingCredits,
		ThisWeek:     thisWeek,
		LastWeek:     lastWeek,
		WeeklyGrowth: growth,
		Animating:    l.animating,
		Tier:         TierFor(lifetime),
	}
}

// Stop cancels any in-flight animation. Used on shutdown so no step fires
// after teardown.
func (l *Ledger) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.animating = false
}

// startAnimationLocked cancels any running animation and schedules a fresh
// eased count-up from the displayed value to the current target.
func (l *Ledger) startAnimationLocked() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	start := l.displayed
	end := BaseCredits + l.bonus
	l.animating = true
	l.gen++
	gen := l.gen

	step := 0
	var cancel func()
	cancel = l.sched.Schedule(StepInterval, func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		// A superseding trigger started its own run; this one is stale and
		// must not touch the displayed value again.
		if l.gen != gen {
			cancel()
			return
		}
		if step >= Steps {
			return
		}
		step++
		progress := float64(step) / float64(Steps)
		l.displayed = int(math.Round(float64(start) + float64(end-start)*easeOutCubic(progress)))

		if step >= Steps {
			l.displayed = end
			l.animating = false
			cancel()
			l.cancel = nil
		}
	})
	l.cancel = cancel
}

// easeOutCubic is the animation curve: fast start, gentle landing.
func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
