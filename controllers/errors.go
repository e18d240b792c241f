package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/coffee-shop/utils"
	"gorm.io/gorm"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrTableNotFound      = &CustomError{"Table not found"}
	ErrInvalidTableNumber = &CustomError{"Please enter a valid table number"}
	ErrTableUnavailable   = &CustomError{"This table is already reserved"}
	ErrDuplicateTable     = &CustomError{"A table can only be reserved once per reservation"}
	ErrNotEnoughSeats     = &CustomError{"Selected tables do not seat the whole party"}
	ErrAlreadyCancelled   = &CustomError{"Reservation is already cancelled"}
	ErrInvalidPartySize   = &CustomError{"party_size must be a whole number"}
	ErrMenuItemNotFound   = &CustomError{"Menu item not found"}
	ErrCartNotFound       = &CustomError{"Cart not found"}
	ErrCartItemNotFound   = &CustomError{"Item is not in the cart"}
	ErrCartEmpty          = &CustomError{"Your cart is empty. Please add items before checkout."}
	ErrMissingContact     = &CustomError{"Please fill in all the required fields"}
	ErrInvalidEmail       = &CustomError{"Please enter a valid email address"}
	ErrNoPaymentMethod    = &CustomError{"Please select a payment method"}
	ErrUnknownPayment     = &CustomError{"Unknown payment method"}
	ErrCheckoutNotFound   = &CustomError{"Checkout not found"}
	ErrCheckoutClosed     = &CustomError{"This checkout can no longer be changed"}
	ErrInvalidStep        = &CustomError{"This checkout step is not available yet"}
	ErrNotPaid            = &CustomError{"Receipt is available once the order is paid"}
)

// respondLookupError maps a failed lookup to 404 when the record is missing,
// 500 otherwise.
func respondLookupError(c *gin.Context, err error, notFound *CustomError) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, notFound)
		return
	}
	utils.ErrorLogger.Errorf("Database error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.RespondError(c, http.StatusInternalServerError, err)
}
