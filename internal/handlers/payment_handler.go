package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

// CreatePaymentIntent opens a card payment intent in USD for the given price.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	if h.Options.PaymentRequiresAuth {
		if _, ok := middleware.IdentityFrom(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
	}

	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	amount := services.ToMinorUnits(req.Price)
	secret, err := h.Payments.CreatePaymentIntent(c.Request.Context(), amount, services.PaymentCurrency)
	if err != nil {
		h.Logger.Error().Err(err).Int64("amount", amount).Msg("failed to create payment intent")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
