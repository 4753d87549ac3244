package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

const noAccessMessage = "Not Have Access"

// CreateUser inserts the user without checking for an existing email.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Users.Create(c.Request.Context(), &user)
	if err != nil {
		h.storeError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpsertUser writes the user keyed by email, creating it when absent.
func (h *Handler) UpsertUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Users.UpsertByEmail(c.Request.Context(), &user)
	if err != nil {
		h.storeError(c, err, "Failed to save user")
		return
	}

	c.JSON(http.StatusOK, result)
}

// MakeAdmin grants the Admin role to the user named in the body. Only a
// requester whose own stored role is Admin may do this.
func (h *Handler) MakeAdmin(c *gin.Context) {
	requester, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": noAccessMessage})
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	account, err := h.Users.FindByEmail(ctx, requester.Email)
	if err != nil {
		h.storeError(c, err, "Failed to look up requester")
		return
	}
	if !account.IsAdmin() {
		h.denyPromotion(c, requester.Email)
		return
	}

	result, err := h.Users.SetRole(ctx, req.Email, models.RoleAdmin)
	if err != nil {
		h.storeError(c, err, "Failed to update user role")
		return
	}

	h.Logger.Info().Str("requester", requester.Email).Str("target", req.Email).Msg("user promoted to admin")
	c.JSON(http.StatusOK, result)
}

// denyPromotion answers an authenticated non-admin requester. With
// AdminSilentDenial nothing is written and the request is held until the
// client or the server gives up. A request released by server shutdown while
// the client is still connected gets a 503, never a success status.
func (h *Handler) denyPromotion(c *gin.Context, requester string) {
	h.Logger.Warn().Str("requester", requester).Bool("silent", h.Options.AdminSilentDenial).Msg("admin promotion denied")

	if !h.Options.AdminSilentDenial {
		c.JSON(http.StatusForbidden, gin.H{"message": noAccessMessage})
		return
	}

	// Reaching EOF lets net/http notice the client going away and cancel the context.
	_, _ = io.Copy(io.Discard, c.Request.Body)
	<-c.Request.Context().Done()
	c.AbortWithStatus(http.StatusServiceUnavailable)
}

// CheckAdmin reports whether the user with the given email has the Admin role.
func (h *Handler) CheckAdmin(c *gin.Context) {
	user, err := h.Users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.storeError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}
