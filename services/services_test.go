package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/coffee-shop/config"
	"github.com/yeremiapane/coffee-shop/database"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := config.InitDB(&config.Config{
		DBDriver: "sqlite",
		DBDSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	return db
}

// seedReviewedOrder creates a cart holding two espressos and a draft order for
// it that has reached the review step.
func seedReviewedOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()

	cart := models.Cart{
		ID: uuid.NewString(),
		Items: []models.CartItem{
			{MenuItemID: 1, Quantity: 2, UnitPrice: 25000},
		},
	}
	require.NoError(t, db.Create(&cart).Error)

	order := models.Order{
		Reference:     uuid.NewString(),
		CartID:        cart.ID,
		Step:          models.StepReview,
		Status:        models.OrderStatusDraft,
		CustomerName:  "Ayu",
		CustomerEmail: "ayu@example.com",
		CustomerPhone: "08123456789",
		PaymentMethod: "gopay",
		TotalAmount:   50000,
		Items: []models.OrderItem{
			{MenuItemID: 1, Name: "Espresso", Quantity: 2, UnitPrice: 25000, Subtotal: 50000},
		},
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}
