package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/coffee-shop/models"
)

func TestRenderReceipt(t *testing.T) {
	tableID := uint(7)
	paidAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	order := models.Order{
		ID:            1,
		Reference:     "3f2a9c1e-0000-4000-8000-000000000001",
		TableID:       &tableID,
		Status:        models.OrderStatusPaid,
		CustomerName:  "Ayu",
		CustomerEmail: "ayu@example.com",
		PaymentMethod: "bca",
		TotalAmount:   95000,
		PaidAt:        &paidAt,
		Items: []models.OrderItem{
			{Name: "Latte", Quantity: 2, UnitPrice: 35000, Subtotal: 70000},
			{Name: "Espresso", Quantity: 1, UnitPrice: 25000, Subtotal: 25000},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderReceipt(&buf, order, &models.Payment{ReferenceID: "pay-ref"}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderReceipt_RequiresPaidOrder(t *testing.T) {
	var buf bytes.Buffer
	err := RenderReceipt(&buf, models.Order{Reference: "abc", Status: models.OrderStatusDraft}, nil)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
