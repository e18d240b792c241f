package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/coffee-shop/utils"
)

func ReceiptLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reference := c.Param("reference")
		utils.InfoLogger.Printf("Generating receipt for order: %s", reference)

		c.Next()

		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Receipt generated successfully for order: %s", reference)
		} else {
			utils.ErrorLogger.Errorf("Failed to generate receipt for order: %s (status %d)", reference, c.Writer.Status())
		}
	}
}
