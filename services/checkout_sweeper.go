package services

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

// CheckoutSweeper expires draft checkouts the customer walked away from.
type CheckoutSweeper struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
	TTL      time.Duration
	done     chan struct{}
	now      func() time.Time

	started  atomic.Bool
	stopOnce sync.Once
}

func NewCheckoutSweeper(db *gorm.DB, ttl time.Duration) *CheckoutSweeper {
	return &CheckoutSweeper{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Minute,
		TTL:      ttl,
		done:     make(chan struct{}),
		now:      time.Now,
	}
}

// Start launches the sweep loop. Calling it more than once has no effect.
func (cs *CheckoutSweeper) Start() {
	if !cs.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(cs.done)
		ticker := time.NewTicker(cs.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := cs.Sweep(); err != nil {
					utils.ErrorLogger.Errorf("Error sweeping stale checkouts: %v", err)
				}
			case <-cs.StopChan:
				return
			}
		}
	}()
	utils.InfoLogger.Printf("Checkout sweeper started (ttl=%s, interval=%s)", cs.TTL, cs.Interval)
}

// Stop ends the sweep loop and waits for it to return. It is safe to call
// more than once, and before Start.
func (cs *CheckoutSweeper) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.StopChan)
	})
	if cs.started.Load() {
		<-cs.done
	}
}

// Sweep marks every draft order older than TTL as expired and returns how many changed.
func (cs *CheckoutSweeper) Sweep() (int64, error) {
	cutoff := cs.now().Add(-cs.TTL)
	res := cs.DB.Model(&models.Order{}).
		Where("status = ? AND created_at < ?", models.OrderStatusDraft, cutoff).
		Update("status", models.OrderStatusExpired)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		utils.InfoLogger.Printf("Expired %d stale checkouts", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
