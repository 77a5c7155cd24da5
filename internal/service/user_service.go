package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"
	"github.com/Akanksha212004/twiller-2.0/internal/mail"
	"github.com/Akanksha212004/twiller-2.0/internal/policy"
	"github.com/Akanksha212004/twiller-2.0/internal/repo"
	"github.com/Akanksha212004/twiller-2.0/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user already exists")
	ErrResetLimit   = errors.New("password reset already requested today")
)

const bcryptCost = 10

// UserService handles accounts: registration, profile, notification
// preference, password recovery.
type UserService struct {
	repo   repo.UserRepo
	mailer mail.Mailer
	clock  policy.Clock
	loc    *time.Location
}

// NewUserService returns a new UserService. loc is the civil zone used
// for the once-per-day password reset limit.
func NewUserService(r repo.UserRepo, mailer mail.Mailer, clock policy.Clock, loc *time.Location) *UserService {
	return &UserService{repo: r, mailer: mailer, clock: clock, loc: loc}
}

// NormalizeEmail lowercases and trims an identity email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account on the free plan with its single
// starter tweet.
func (s *UserService) Register(ctx context.Context, email, password, username, displayName string) (dom.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, dom.User{
		Email:        NormalizeEmail(email),
		Username:     strings.TrimSpace(username),
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: string(hash),
		Subscription: dom.DefaultSubscription(),
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// CurrentUser returns the account for email. Accounts written before
// the subscription field existed are backfilled to the free plan.
func (s *UserService) CurrentUser(ctx context.Context, email string) (dom.User, error) {
	u, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	if !u.Subscription.Plan.Valid() {
		u, err = s.repo.SetSubscription(ctx, u.ID, dom.DefaultSubscription())
		if err != nil {
			return dom.User{}, err
		}
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields to the account's profile.
func (s *UserService) UpdateProfile(ctx context.Context, email string, displayName, avatar, bio, location, website *string) (dom.User, error) {
	u, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	if displayName != nil {
		u.DisplayName = strings.TrimSpace(*displayName)
	}
	if avatar != nil {
		u.Avatar = *avatar
	}
	if bio != nil {
		u.Bio = *bio
	}
	if location != nil {
		u.Location = *location
	}
	if website != nil {
		u.Website = *website
	}
	return s.repo.UpdateProfile(ctx, u.ID, u)
}

// SetNotifications flips the notification preference.
func (s *UserService) SetNotifications(ctx context.Context, userID int64, enabled bool) error {
	err := s.repo.SetNotifications(ctx, userID, enabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	return err
}

// ForgotPassword replaces the account's password with a generated
// temporary one and mails it. Allowed once per calendar day in the
// configured zone.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	today := s.clock.Now().In(s.loc).Format("2006-01-02")
	if u.LastForgotRequest == today {
		return ErrResetLimit
	}
	password, err := utils.TempPassword(8)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.SetPassword(ctx, u.ID, string(hash), today); err != nil {
		return err
	}
	return s.mailer.Send(ctx, mail.PasswordReset(u.Email, password))
}
