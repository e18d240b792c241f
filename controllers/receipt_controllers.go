package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/services"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

type ReceiptController struct {
	DB             *gorm.DB
	PaymentService *services.PaymentService
}

func NewReceiptController(db *gorm.DB, paymentService *services.PaymentService) *ReceiptController {
	return &ReceiptController{
		DB:             db,
		PaymentService: paymentService,
	}
}

// DownloadReceipt -> struk PDF untuk order yang sudah dibayar
func (rc *ReceiptController) DownloadReceipt(c *gin.Context) {
	var order models.Order
	err := rc.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("reference = ?", c.Param("reference")).
		First(&order).Error
	if err != nil {
		respondLookupError(c, err, ErrCheckoutNotFound)
		return
	}
	if order.Status != models.OrderStatusPaid {
		utils.RespondError(c, http.StatusConflict, ErrNotPaid)
		return
	}

	payment, err := rc.PaymentService.GetPaymentByOrderID(order.ID)
	if err != nil {
		utils.ErrorLogger.Errorf("Paid order %s has no payment: %v", order.Reference, err)
	}

	var buf bytes.Buffer
	if err := services.RenderReceipt(&buf, order, payment); err != nil {
		utils.ErrorLogger.Errorf("Failed to render receipt for %s: %v", order.Reference, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.ShortReference()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
