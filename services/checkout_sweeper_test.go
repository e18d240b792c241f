package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/coffee-shop/models"
)

func TestCheckoutSweeper_ExpiresOnlyStaleDrafts(t *testing.T) {
	db := setupTestDB(t)
	stale := seedReviewedOrder(t, db)
	fresh := seedReviewedOrder(t, db)
	paid := seedReviewedOrder(t, db)
	require.NoError(t, db.Model(&paid).Update("status", models.OrderStatusPaid).Error)

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, db.Model(&models.Order{}).Where("id IN ?", []uint{stale.ID, paid.ID}).
		Update("created_at", old).Error)

	sweeper := NewCheckoutSweeper(db, 30*time.Minute)
	n, err := sweeper.Sweep()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	statusOf := func(id uint) string {
		var o models.Order
		require.NoError(t, db.First(&o, id).Error)
		return o.Status
	}
	assert.Equal(t, models.OrderStatusExpired, statusOf(stale.ID))
	assert.Equal(t, models.OrderStatusDraft, statusOf(fresh.ID))
	assert.Equal(t, models.OrderStatusPaid, statusOf(paid.ID))
}

func TestCheckoutSweeper_StartStop(t *testing.T) {
	db := setupTestDB(t)
	order := seedReviewedOrder(t, db)

	sweeper := NewCheckoutSweeper(db, time.Minute)
	sweeper.Interval = 5 * time.Millisecond
	sweeper.now = func() time.Time { return time.Now().Add(time.Hour) }
	sweeper.Start()

	assert.Eventually(t, func() bool {
		var o models.Order
		if err := db.First(&o, order.ID).Error; err != nil {
			return false
		}
		return o.Status == models.OrderStatusExpired
	}, time.Second, 10*time.Millisecond)

	sweeper.Stop()
}

func TestCheckoutSweeper_StopWithoutStart(t *testing.T) {
	sweeper := NewCheckoutSweeper(setupTestDB(t), time.Minute)

	stopped := make(chan struct{})
	go func() {
		sweeper.Stop()
		sweeper.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a sweeper that was never started")
	}
}

func TestCheckoutSweeper_StopTwiceAfterStart(t *testing.T) {
	sweeper := NewCheckoutSweeper(setupTestDB(t), time.Minute)
	sweeper.Interval = time.Hour
	sweeper.Start()
	sweeper.Start()

	sweeper.Stop()
	assert.NotPanics(t, sweeper.Stop)
}
