package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/coffee-shop/kds"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

// ErrOrderNotPayable is returned when an order is not a draft at the review step.
var ErrOrderNotPayable = errors.New("order is not ready for payment")

// PaymentMetrics menyimpan metrik terkait pembayaran
type PaymentMetrics struct {
	TotalTransactions  int64 `json:"total_transactions"`
	SuccessfulPayments int64 `json:"successful_payments"`
	PendingPayments    int64 `json:"pending_payments"`
	TotalRevenue       int64 `json:"total_revenue"`
}

// PaymentService runs the simulated payment gateway: every payment is accepted,
// then confirmed as successful once Delay has passed.
type PaymentService struct {
	db    *gorm.DB
	Delay time.Duration

	metrics  PaymentMetrics
	mutex    sync.Mutex
	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// NewPaymentService membuat instance baru PaymentService
func NewPaymentService(db *gorm.DB, delay time.Duration) *PaymentService {
	return &PaymentService{
		db:    db,
		Delay: delay,
		stop:  make(chan struct{}),
	}
}

// StartPayment moves a reviewed draft order to processing, records a pending
// payment and schedules its confirmation.
func (s *PaymentService) StartPayment(orderID uint) (*models.Payment, error) {
	var payment models.Payment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}

		// Conditional update so a double submit cannot create two payments.
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ? AND step = ?", order.ID, models.OrderStatusDraft, models.StepReview).
			Update("status", models.OrderStatusProcessing)
		if res.Error != nil {
			return fmt.Errorf("failed to update order status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotPayable
		}

		payment = models.Payment{
			OrderID:     order.ID,
			Amount:      order.TotalAmount,
			Status:      models.PaymentStatusPending,
			Method:      order.PaymentMethod,
			ReferenceID: uuid.NewString(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	s.metrics.TotalTransactions++
	s.metrics.PendingPayments++
	s.mutex.Unlock()

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":   payment.OrderID,
		"payment_id": payment.ID,
		"method":     payment.Method,
		"amount":     payment.Amount,
	}).Info("Payment initiated")

	s.wg.Add(1)
	go func(paymentID uint) {
		defer s.wg.Done()

		// Simulasi delay pembayaran
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-s.stop:
			return
		}

		if err := s.CompletePayment(paymentID); err != nil {
			utils.ErrorLogger.Errorf("Failed to complete payment %d: %v", paymentID, err)
		}
	}(payment.ID)

	return &payment, nil
}

// CompletePayment marks the payment successful, the order paid and empties the
// cart the order came from. Completing an already successful payment is a no-op.
func (s *PaymentService) CompletePayment(paymentID uint) error {
	var order models.Order
	alreadyDone := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return fmt.Errorf("failed to find payment: %w", err)
		}
		if payment.Status == models.PaymentStatusSuccess {
			alreadyDone = true
			return nil
		}

		now := time.Now()
		payment.Status = models.PaymentStatusSuccess
		payment.PaymentTime = &now
		if err := tx.Save(&payment).Error; err != nil {
			return fmt.Errorf("failed to update payment status: %w", err)
		}

		if err := tx.Preload("Items").First(&order, payment.OrderID).Error; err != nil {
			return fmt.Errorf("failed to find order: %w", err)
		}
		order.Status = models.OrderStatusPaid
		order.PaidAt = &now
		if err := tx.Omit("Items").Save(&order).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		if order.CartID != "" {
			if err := tx.Where("cart_id = ?", order.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return fmt.Errorf("failed to clear cart: %w", err)
			}
		}
		return nil
	})
	if err != nil || alreadyDone {
		return err
	}

	s.mutex.Lock()
	s.metrics.SuccessfulPayments++
	s.metrics.PendingPayments--
	s.metrics.TotalRevenue += order.TotalAmount
	s.mutex.Unlock()

	utils.InfoLogger.Printf("Payment %d succeeded, order %s paid (%s)",
		paymentID, order.Reference, utils.FormatRupiah(order.TotalAmount))

	kds.BroadcastOrderPaid(order)
	kds.BroadcastStaffNotification(fmt.Sprintf("Payment received for %s", order.ShortReference()))
	return nil
}

// GetPaymentByOrderID mendapatkan pembayaran terakhir berdasarkan OrderID
func (s *PaymentService) GetPaymentByOrderID(orderID uint) (*models.Payment, error) {
	var payment models.Payment
	result := s.db.Where("order_id = ?", orderID).Order("id DESC").First(&payment)
	if result.Error != nil {
		return nil, result.Error
	}
	return &payment, nil
}

// Metrics returns a snapshot of the counters.
func (s *PaymentService) Metrics() PaymentMetrics {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.metrics
}

// Wait blocks until every scheduled confirmation has run or been abandoned.
func (s *PaymentService) Wait() {
	s.wg.Wait()
}

// Stop abandons pending confirmations and waits for their goroutines to exit.
func (s *PaymentService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	s.wg.Wait()
}
