package handlers

import (
	"errors"
	"net/http"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"
	"github.com/Akanksha212004/twiller-2.0/internal/dto"
	"github.com/Akanksha212004/twiller-2.0/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile, notification and subscription routes.
type UserHandler struct {
	userSvc *service.UserService
	subSvc  *service.SubscriptionService
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(userSvc *service.UserService, subSvc *service.SubscriptionService) *UserHandler {
	return &UserHandler{userSvc: userSvc, subSvc: subSvc}
}

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                   u.ID,
		Email:                u.Email,
		Username:             u.Username,
		DisplayName:          u.DisplayName,
		Avatar:               u.Avatar,
		Bio:                  u.Bio,
		Location:             u.Location,
		Website:              u.Website,
		NotificationsEnabled: u.NotificationsEnabled,
		Subscription: dto.SubscriptionResponse{
			Plan:            string(u.Subscription.Plan),
			TweetsRemaining: u.Subscription.TweetsRemaining,
		},
		JoinedDate: u.JoinedAt,
	}
}

// Me godoc
// @Summary      Current account by email
// @Tags         users
// @Produce      json
// @Param        email  query  string  true  "Account email"
// @Success      200   {object}  dto.UserResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter required"})
		return
	}
	user, err := h.userSvc.CurrentUser(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// The original API answers null for an unknown email.
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

// UpdateProfile godoc
// @Summary      Patch profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path  string  true  "Account email"
// @Param        body   body  dto.UpdateProfileRequest  true  "Fields to change"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  map[string]string
// @Router       /users/{email} [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.UpdateProfile(c.Request.Context(), c.Param("email"),
		req.DisplayName, req.Avatar, req.Bio, req.Location, req.Website)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile update failed"})
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

// SetNotifications godoc
// @Summary      Enable or disable notifications
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NotificationRequest  true  "Preference"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  map[string]string
// @Router       /users/notification [put]
func (h *UserHandler) SetNotifications(c *gin.Context) {
	var req dto.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.userSvc.SetNotifications(c.Request.Context(), req.UserID, *req.Enabled); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Subscribe godoc
// @Summary      Buy a subscription plan
// @Description  Paid plans only, and only inside the payment window. An invoice is mailed.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubscribeRequest  true  "Plan purchase"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /subscriptions [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, err := h.subSvc.Subscribe(c.Request.Context(), req.UserID, dom.Plan(req.Plan))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPlan):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown plan"})
		case errors.Is(err, service.ErrFreePlanPayment):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Free plan does not require payment"})
		case errors.Is(err, service.ErrOutsidePaymentWindow):
			c.JSON(http.StatusForbidden, gin.H{"message": "Payments allowed only between 10-11 AM IST"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "subscription failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
