package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

type CheckoutController struct {
	DB *gorm.DB
}

func NewCheckoutController(db *gorm.DB) *CheckoutController {
	return &CheckoutController{DB: db}
}

// StartCheckout -> buat order draft (step 1) dari isi keranjang
func (cc *CheckoutController) StartCheckout(c *gin.Context) {
	var req struct {
		CartID string `json:"cart_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, err := loadCart(cc.DB, req.CartID)
	if err != nil {
		respondLookupError(c, err, ErrCartNotFound)
		return
	}
	if len(cart.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrCartEmpty)
		return
	}

	order := models.Order{
		Reference:   uuid.New().String(),
		CartID:      cart.ID,
		TableID:     cart.TableID,
		Step:        models.StepContact,
		Status:      models.OrderStatusDraft,
		TotalAmount: cart.Total(),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.MenuItem.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal(),
		})
	}

	if err := cc.DB.Create(&order).Error; err != nil {
		utils.ErrorLogger.Errorf("Failed to create order for cart %s: %v", cart.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Checkout %s started: %d items, total %s",
		order.Reference, len(order.Items), utils.FormatRupiah(order.TotalAmount))
	utils.RespondJSON(c, http.StatusCreated, "Checkout started", order)
}

func (cc *CheckoutController) GetCheckout(c *gin.Context) {
	order, err := cc.findOrder(c.Param("reference"))
	if err != nil {
		respondLookupError(c, err, ErrCheckoutNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Checkout detail", order)
}

var contactValidator = validator.New()

type contactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// normalize trims every field, then checks presence before email format.
func (r *contactRequest) normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Name == "" || r.Email == "" || r.Phone == "" {
		return ErrMissingContact
	}
	if err := contactValidator.Var(r.Email, "email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// SubmitContact -> step 1: data pemesan
func (cc *CheckoutController) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.normalize(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := cc.findOrder(c.Param("reference"))
	if err != nil {
		respondLookupError(c, err, ErrCheckoutNotFound)
		return
	}
	if !order.IsEditable() {
		utils.RespondError(c, http.StatusConflict, ErrCheckoutClosed)
		return
	}

	order.CustomerName = req.Name
	order.CustomerEmail = req.Email
	order.CustomerPhone = req.Phone
	if order.Step < models.StepPaymentMethod {
		order.Step = models.StepPaymentMethod
	}
	if err := cc.saveStep(order); err != nil {
		respondSaveError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Contact details saved", order)
}

// SelectPaymentMethod -> step 2: pilih metode pembayaran
func (cc *CheckoutController) SelectPaymentMethod(c *gin.Context) {
	var req struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Method == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrNoPaymentMethod)
		return
	}
	if _, ok := models.FindPaymentMethod(req.Method); !ok {
		utils.RespondError(c, http.StatusBadRequest, ErrUnknownPayment)
		return
	}

	order, err := cc.findOrder(c.Param("reference"))
	if err != nil {
		respondLookupError(c, err, ErrCheckoutNotFound)
		return
	}
	if !order.IsEditable() {
		utils.RespondError(c, http.StatusConflict, ErrCheckoutClosed)
		return
	}
	if order.Step < models.StepPaymentMethod {
		utils.RespondError(c, http.StatusConflict, ErrInvalidStep)
		return
	}

	order.PaymentMethod = req.Method
	order.Step = models.StepReview
	if err := cc.saveStep(order); err != nil {
		respondSaveError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment method selected", order)
}

// Back -> kembali satu langkah, minimal step 1
func (cc *CheckoutController) Back(c *gin.Context) {
	order, err := cc.findOrder(c.Param("reference"))
	if err != nil {
		respondLookupError(c, err, ErrCheckoutNotFound)
		return
	}
	if !order.IsEditable() {
		utils.RespondError(c, http.StatusConflict, ErrCheckoutClosed)
		return
	}

	if order.Step > models.StepContact {
		order.Step--
	}
	if err := cc.saveStep(order); err != nil {
		respondSaveError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Moved back", order)
}

func (cc *CheckoutController) findOrder(reference string) (*models.Order, error) {
	var order models.Order
	err := cc.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("reference = ?", reference).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// saveStep persists the editable checkout fields, guarded on the order still
// being a draft so it cannot race a payment.
func (cc *CheckoutController) saveStep(order *models.Order) error {
	res := cc.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.OrderStatusDraft).
		Updates(map[string]interface{}{
			"step":           order.Step,
			"customer_name":  order.CustomerName,
			"customer_email": order.CustomerEmail,
			"customer_phone": order.CustomerPhone,
			"payment_method": order.PaymentMethod,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCheckoutClosed
	}
	return nil
}

func respondSaveError(c *gin.Context, err error) {
	if errors.Is(err, ErrCheckoutClosed) {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}
