package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Akanksha212004/twiller-2.0/internal/auth"
	"github.com/Akanksha212004/twiller-2.0/internal/dto"
	"github.com/Akanksha212004/twiller-2.0/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, the login policy flow and password
// recovery.
type AuthHandler struct {
	sessions *auth.Store
	userSvc  *service.UserService
	loginSvc *service.LoginService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(sessions *auth.Store, userSvc *service.UserService, loginSvc *service.LoginService) *AuthHandler {
	return &AuthHandler{sessions: sessions, userSvc: userSvc, loginSvc: loginSvc}
}

// clientIP resolves the network address: first entry of the trusted
// proxy header, else the transport peer.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	return c.ClientIP()
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "New account"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Email, req.Password, req.Username, req.DisplayName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists or invalid data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	sessionID, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(auth.SessionCookieName, sessionID, 24*60*60, "/", "", false, true) // 24h, httpOnly
	c.JSON(http.StatusCreated, userToResponse(user))
}

// Login godoc
// @Summary      Login with email and password
// @Description  Chrome logins get an emailed one-time code; mobile logins are limited to the allowed window.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.loginSvc.Login(c.Request.Context(), req.Email, req.Password,
		c.GetHeader("User-Agent"), clientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		case errors.Is(err, service.ErrOutsideLoginWindow):
			c.JSON(http.StatusForbidden, gin.H{"message": "Mobile login allowed only between 10 AM and 1 PM"})
		case errors.Is(err, service.ErrOTPDispatch):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP email failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}
	if result.OTPRequired {
		c.JSON(http.StatusOK, dto.LoginResponse{
			OTPRequired: true,
			Message:     "OTP sent to email for Chrome login",
		})
		return
	}
	sessionID, err := h.sessions.Create(c.Request.Context(), result.User.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(auth.SessionCookieName, sessionID, 24*60*60, "/", "", false, true) // 24h, httpOnly
	user := userToResponse(result.User)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Message: "Login successful", User: &user})
}

// RequestOTP godoc
// @Summary      Send a login one-time code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RequestOTPRequest  true  "Email"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/request-otp [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req dto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.loginSvc.RequestOTP(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP email failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// VerifyOTP godoc
// @Summary      Complete a pending login with the emailed code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyOTPRequest  true  "Email and code"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.loginSvc.VerifyOTP(c.Request.Context(), req.Email, req.OTP,
		c.GetHeader("User-Agent"), clientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOTP):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		}
		return
	}
	sessionID, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(auth.SessionCookieName, sessionID, 24*60*60, "/", "", false, true) // 24h, httpOnly
	resp := userToResponse(user)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Message: "OTP verified, login successful", User: &resp})
}

// ForgotPassword godoc
// @Summary      Mail a temporary password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "Email"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.userSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, service.ErrResetLimit):
			c.JSON(http.StatusForbidden, gin.H{"message": "Password reset already requested today"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "password reset failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password sent"})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// LoginHistory godoc
// @Summary      Login history for an account, newest first
// @Tags         auth
// @Produce      json
// @Param        email  query  string  true  "Account email"
// @Success      200   {array}   dto.LoginRecordResponse
// @Failure      404   {object}  map[string]string
// @Router       /users/login-history [get]
func (h *AuthHandler) LoginHistory(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter required"})
		return
	}
	records, err := h.loginSvc.History(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load login history"})
		return
	}
	// Storage order is oldest first; display wants the latest on top.
	out := make([]dto.LoginRecordResponse, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		out = append(out, dto.LoginRecordResponse{
			Browser:   rec.Browser,
			OS:        rec.OS,
			Device:    rec.Device,
			IPAddress: rec.IPAddress,
			LoginTime: rec.LoginTime,
		})
	}
	c.JSON(http.StatusOK, out)
}
