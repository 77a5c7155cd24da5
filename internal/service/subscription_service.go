package service

import (
	"context"
	"errors"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"
	"github.com/Akanksha212004/twiller-2.0/internal/mail"
	"github.com/Akanksha212004/twiller-2.0/internal/policy"
	"github.com/Akanksha212004/twiller-2.0/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	ErrUnknownPlan          = errors.New("unknown plan")
	ErrFreePlanPayment      = errors.New("free plan does not require payment")
	ErrOutsidePaymentWindow = errors.New("payments allowed only between 10-11 AM")
)

// SubscriptionService sells plan upgrades inside the payment window and
// sends the invoice.
type SubscriptionService struct {
	users     repo.UserRepo
	mailer    mail.Mailer
	clock     policy.Clock
	payWindow policy.Window
}

// NewSubscriptionService returns a new SubscriptionService.
func NewSubscriptionService(users repo.UserRepo, mailer mail.Mailer, clock policy.Clock, payWindow policy.Window) *SubscriptionService {
	return &SubscriptionService{users: users, mailer: mailer, clock: clock, payWindow: payWindow}
}

// Subscribe overwrites the user's subscription with the purchased
// plan's fresh allowance and mails the invoice. Free is rejected
// outright; paid plans only inside the payment window.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID int64, plan dom.Plan) (dom.User, error) {
	if !plan.Valid() {
		return dom.User{}, ErrUnknownPlan
	}
	if plan == dom.PlanFree {
		return dom.User{}, ErrFreePlanPayment
	}
	if !s.payWindow.Open(s.clock) {
		return dom.User{}, ErrOutsidePaymentWindow
	}

	u, err := s.users.SetSubscription(ctx, userID, dom.NewSubscription(plan))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}

	if err := s.mailer.Send(ctx, mail.Invoice(u.Email, plan)); err != nil {
		return dom.User{}, err
	}
	return u, nil
}
