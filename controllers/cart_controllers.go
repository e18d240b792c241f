package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/coffee-shop/models"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// CartSummary is the cart as the front end renders it.
type CartSummary struct {
	ID             string            `json:"id"`
	TableID        *uint             `json:"table_id,omitempty"`
	Items          []models.CartItem `json:"items"`
	Total          int64             `json:"total"`
	FormattedTotal string            `json:"formatted_total"`
	ItemCount      int               `json:"item_count"`
}

func summarize(cart *models.Cart) CartSummary {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return CartSummary{
		ID:             cart.ID,
		TableID:        cart.TableID,
		Items:          items,
		Total:          cart.Total(),
		FormattedTotal: utils.FormatRupiah(cart.Total()),
		ItemCount:      cart.ItemCount(),
	}
}

func loadCart(db *gorm.DB, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.MenuItem").
		Where("id = ?", cartID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// CreateCart -> keranjang baru, opsional terikat ke meja
func (cc *CartController) CreateCart(c *gin.Context) {
	var req struct {
		TableID *uint `json:"table_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.TableID != nil {
		var table models.Table
		if err := cc.DB.First(&table, "id = ?", *req.TableID).Error; err != nil {
			respondLookupError(c, err, ErrTableNotFound)
			return
		}
	}

	cart := models.Cart{ID: uuid.New().String(), TableID: req.TableID}
	if err := cc.DB.Create(&cart).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Cart created", summarize(&cart))
}

func (cc *CartController) GetCart(c *gin.Context) {
	cart, err := loadCart(cc.DB, c.Param("cart_id"))
	if err != nil {
		respondLookupError(c, err, ErrCartNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart detail", summarize(cart))
}

// AddItem -> tambah menu ke keranjang; item yang sudah ada ditambah jumlahnya
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		MenuID   uint `json:"menu_id" binding:"required"`
		Quantity int  `json:"quantity" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cartID := c.Param("cart_id")
	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("id = ?", cartID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		var menu models.MenuItem
		if err := tx.First(&menu, "id = ?", req.MenuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}

		var line models.CartItem
		err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, req.MenuID).First(&line).Error
		switch {
		case err == nil:
			return tx.Model(&line).Update("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.CartItem{
				CartID:     cartID,
				MenuItemID: menu.ID,
				Quantity:   req.Quantity,
				UnitPrice:  menu.Price,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		cc.respondCartError(c, err)
		return
	}

	cart, err := loadCart(cc.DB, cartID)
	if err != nil {
		respondLookupError(c, err, ErrCartNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", summarize(cart))
}

// UpdateQuantity -> set jumlah item; nilai di bawah 1 menjadi 1
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	quantity := *req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	cartID := c.Param("cart_id")
	if !cc.cartExists(c, cartID) {
		return
	}

	result := cc.DB.Model(&models.CartItem{}).
		Where("cart_id = ? AND menu_item_id = ?", cartID, c.Param("menu_id")).
		Update("quantity", quantity)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, ErrCartItemNotFound)
		return
	}

	cart, err := loadCart(cc.DB, cartID)
	if err != nil {
		respondLookupError(c, err, ErrCartNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", summarize(cart))
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	cartID := c.Param("cart_id")
	if !cc.cartExists(c, cartID) {
		return
	}

	result := cc.DB.Where("cart_id = ? AND menu_item_id = ?", cartID, c.Param("menu_id")).Delete(&models.CartItem{})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, ErrCartItemNotFound)
		return
	}

	cart, err := loadCart(cc.DB, cartID)
	if err != nil {
		respondLookupError(c, err, ErrCartNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", summarize(cart))
}

// ClearCart -> kosongkan keranjang
func (cc *CartController) ClearCart(c *gin.Context) {
	cartID := c.Param("cart_id")
	if !cc.cartExists(c, cartID) {
		return
	}

	if err := cc.DB.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cart, err := loadCart(cc.DB, cartID)
	if err != nil {
		respondLookupError(c, err, ErrCartNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", summarize(cart))
}

func (cc *CartController) cartExists(c *gin.Context, cartID string) bool {
	var count int64
	if err := cc.DB.Model(&models.Cart{}).Where("id = ?", cartID).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return false
	}
	if count == 0 {
		utils.RespondError(c, http.StatusNotFound, ErrCartNotFound)
		return false
	}
	return true
}

func (cc *CartController) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCartNotFound), errors.Is(err, ErrMenuItemNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.ErrorLogger.Errorf("Cart update failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
