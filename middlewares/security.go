package middlewares

import (
	"github.com/gin-gonic/gin"
)

func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Security-Policy", "default-src 'self'; img-src 'self' https://images.unsplash.com data:")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		// Kamera dibutuhkan halaman scan QR meja
		c.Header("Permissions-Policy", "camera=(self), geolocation=(), microphone=()")

		c.Next()
	}
}
