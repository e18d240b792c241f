package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/services"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

type PaymentController struct {
	DB             *gorm.DB
	PaymentService *services.PaymentService
}

func NewPaymentController(db *gorm.DB, paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{
		DB:             db,
		PaymentService: paymentService,
	}
}

// GetPaymentMethods -> katalog metode pembayaran
func (pc *PaymentController) GetPaymentMethods(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of payment methods", models.PaymentMethods)
}

// Pay -> step 3: konfirmasi pembayaran, diproses di background
func (pc *PaymentController) Pay(c *gin.Context) {
	var order models.Order
	if err := pc.DB.Where("reference = ?", c.Param("reference")).First(&order).Error; err != nil {
		respondLookupError(c, err, ErrCheckoutNotFound)
		return
	}
	if !order.IsEditable() {
		utils.RespondError(c, http.StatusConflict, ErrCheckoutClosed)
		return
	}
	if order.Step != models.StepReview {
		utils.RespondError(c, http.StatusConflict, ErrInvalidStep)
		return
	}

	payment, err := pc.PaymentService.StartPayment(order.ID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotPayable) {
			utils.RespondError(c, http.StatusConflict, ErrCheckoutClosed)
			return
		}
		utils.ErrorLogger.Errorf("Failed to start payment for %s: %v", order.Reference, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusAccepted, "Processing payment", gin.H{
		"reference": order.Reference,
		"status":    models.OrderStatusProcessing,
		"payment":   payment,
	})
}

// GetPaymentStatus -> status pembayaran terakhir untuk order
func (pc *PaymentController) GetPaymentStatus(c *gin.Context) {
	var order models.Order
	if err := pc.DB.Where("reference = ?", c.Param("reference")).First(&order).Error; err != nil {
		respondLookupError(c, err, ErrCheckoutNotFound)
		return
	}

	payment, err := pc.PaymentService.GetPaymentByOrderID(order.ID)
	if err != nil {
		respondLookupError(c, err, &CustomError{"No payment for this checkout yet"})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment status", payment)
}

func (pc *PaymentController) GetPaymentMetrics(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Payment metrics", pc.PaymentService.Metrics())
}
