package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Akanksha212004/twiller-2.0/internal/device"
	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"
	"github.com/Akanksha212004/twiller-2.0/internal/mail"
	"github.com/Akanksha212004/twiller-2.0/internal/otp"
	"github.com/Akanksha212004/twiller-2.0/internal/policy"
	"github.com/Akanksha212004/twiller-2.0/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrOutsideLoginWindow = errors.New("mobile login allowed only between 10 AM and 1 PM")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrOTPDispatch        = errors.New("OTP email failed")
)

// LoginService decides the outcome of a login attempt: direct success,
// one-time code required, or rejection. Successful logins append a
// login-history record.
type LoginService struct {
	users        repo.UserRepo
	history      repo.LoginHistoryRepo
	codes        otp.Store
	mailer       mail.Mailer
	clock        policy.Clock
	mobileWindow policy.Window
}

// NewLoginService wires the policy engine's collaborators. mobileWindow
// is the hour window mobile devices may log in during.
func NewLoginService(users repo.UserRepo, history repo.LoginHistoryRepo, codes otp.Store,
	mailer mail.Mailer, clock policy.Clock, mobileWindow policy.Window) *LoginService {
	return &LoginService{
		users:        users,
		history:      history,
		codes:        codes,
		mailer:       mailer,
		clock:        clock,
		mobileWindow: mobileWindow,
	}
}

// LoginResult is the outcome of a completed credential check.
// OTPRequired means the caller must finish with VerifyOTP; the login is
// not recorded yet and User is empty.
type LoginResult struct {
	OTPRequired bool
	User        dom.User
}

// Login runs the attempt end to end: credential check, device and time
// gates, then either a direct success (history appended) or an emailed
// one-time code for Chrome.
func (s *LoginService) Login(ctx context.Context, email, password, userAgent, ipAddress string) (LoginResult, error) {
	email = NormalizeEmail(email)

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LoginResult{}, ErrUserNotFound
		}
		return LoginResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	info := device.Classify(userAgent)

	// Rule: mobile devices only inside the allowed window, regardless
	// of anything else.
	if info.Device == device.Mobile && !s.mobileWindow.Open(s.clock) {
		return LoginResult{}, ErrOutsideLoginWindow
	}

	// Rule: Chrome steps up to an emailed one-time code. No history
	// yet; that happens when the code is verified.
	if info.Browser == "Google Chrome" {
		code, err := s.codes.Issue(ctx, email)
		if err != nil {
			return LoginResult{}, err
		}
		if err := s.mailer.Send(ctx, mail.LoginOTP(email, code)); err != nil {
			return LoginResult{}, fmt.Errorf("%w: %v", ErrOTPDispatch, err)
		}
		return LoginResult{OTPRequired: true}, nil
	}

	if err := s.recordLogin(ctx, u.ID, info, ipAddress); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: u}, nil
}

// RequestOTP issues and mails a login code outside the password flow.
func (s *LoginService) RequestOTP(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	code, err := s.codes.Issue(ctx, email)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, mail.LoginOTP(email, code)); err != nil {
		return fmt.Errorf("%w: %v", ErrOTPDispatch, err)
	}
	return nil
}

// VerifyOTP completes a pending login. Device info and address come
// from the verification request itself. A wrong code leaves the pending
// entry intact so the user may retry.
func (s *LoginService) VerifyOTP(ctx context.Context, email, code, userAgent, ipAddress string) (dom.User, error) {
	email = NormalizeEmail(email)

	ok, err := s.codes.Verify(ctx, email, code)
	if err != nil {
		return dom.User{}, err
	}
	if !ok {
		return dom.User{}, ErrInvalidOTP
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}

	info := device.Classify(userAgent)
	if err := s.recordLogin(ctx, u.ID, info, ipAddress); err != nil {
		return dom.User{}, err
	}
	return u, nil
}

// History returns the account's login records, oldest first.
func (s *LoginService) History(ctx context.Context, email string) ([]dom.LoginRecord, error) {
	u, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.history.ListByUser(ctx, u.ID)
}

func (s *LoginService) recordLogin(ctx context.Context, userID int64, info device.Info, ipAddress string) error {
	_, err := s.history.Append(ctx, dom.LoginRecord{
		UserID:    userID,
		Browser:   info.Browser,
		OS:        info.OS,
		Device:    info.Device,
		IPAddress: ipAddress,
	})
	return err
}
