package dto

import "time"

// SubscriptionResponse mirrors the subscription value object.
// tweetsRemaining is -1 for the unlimited gold tier.
type SubscriptionResponse struct {
	Plan            string `json:"plan"`
	TweetsRemaining int    `json:"tweetsRemaining"`
}

// UserResponse is the public view of an account. The password hash
// never leaves the server.
type UserResponse struct {
	ID                   int64                `json:"id"`
	Email                string               `json:"email"`
	Username             string               `json:"username"`
	DisplayName          string               `json:"displayName"`
	Avatar               string               `json:"avatar"`
	Bio                  string               `json:"bio"`
	Location             string               `json:"location"`
	Website              string               `json:"website"`
	NotificationsEnabled bool                 `json:"notificationsEnabled"`
	Subscription         SubscriptionResponse `json:"subscription"`
	JoinedDate           time.Time            `json:"joinedDate"`
}

// UpdateProfileRequest is the JSON body for PATCH /users/:email.
// nil = leave unchanged.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" binding:"omitempty,min=1,max=120"`
	Avatar      *string `json:"avatar"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
	Location    *string `json:"location" binding:"omitempty,max=120"`
	Website     *string `json:"website" binding:"omitempty,max=200"`
}

// NotificationRequest is the JSON body for PUT /users/notification.
type NotificationRequest struct {
	UserID  int64 `json:"userId" binding:"required"`
	Enabled *bool `json:"enabled" binding:"required"`
}

// SubscribeRequest is the JSON body for POST /subscriptions.
type SubscribeRequest struct {
	UserID int64  `json:"userId" binding:"required"`
	Plan   string `json:"plan" binding:"required"`
}

// LoginRecordResponse is one entry of the login history.
type LoginRecordResponse struct {
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Device    string    `json:"device"`
	IPAddress string    `json:"ipAddress"`
	LoginTime time.Time `json:"loginTime"`
}

// LoginResponse is returned by POST /auth/login and /auth/verify-otp.
// When OTPRequired is true, User is absent and the login finishes via
// /auth/verify-otp.
type LoginResponse struct {
	Success     bool          `json:"success"`
	OTPRequired bool          `json:"otpRequired,omitempty"`
	Message     string        `json:"message,omitempty"`
	User        *UserResponse `json:"user,omitempty"`
}
