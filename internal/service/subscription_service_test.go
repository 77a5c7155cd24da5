package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"
	"github.com/Akanksha212004/twiller-2.0/internal/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionService(t *testing.T, hour int, users *fakeUserRepo) (*SubscriptionService, *fakeMailer) {
	t.Helper()
	mailer := &fakeMailer{}
	window := policy.NewWindow(10, 11, kolkata())
	return NewSubscriptionService(users, mailer, fixedClock{istAt(hour)}, window), mailer
}

func TestSubscribe_InsideWindow(t *testing.T) {
	u := testUser(t)
	users := newFakeUserRepo(u)
	svc, mailer := newSubscriptionService(t, 10, users)

	out, err := svc.Subscribe(context.Background(), u.ID, dom.PlanSilver)
	require.NoError(t, err)
	assert.Equal(t, dom.PlanSilver, out.Subscription.Plan)
	assert.Equal(t, 5, out.Subscription.TweetsRemaining)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, u.Email, mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].HTML, "SILVER")
	assert.Contains(t, mailer.sent[0].HTML, "300")
}

func TestSubscribe_GoldInvoiceShowsUnlimited(t *testing.T) {
	u := testUser(t)
	users := newFakeUserRepo(u)
	svc, mailer := newSubscriptionService(t, 10, users)

	out, err := svc.Subscribe(context.Background(), u.ID, dom.PlanGold)
	require.NoError(t, err)
	assert.Equal(t, dom.UnlimitedTweets, out.Subscription.TweetsRemaining)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].HTML, "Unlimited")
}

func TestSubscribe_OutsideWindow(t *testing.T) {
	u := testUser(t)
	users := newFakeUserRepo(u)
	// 11 AM is already past the half-open payment window.
	svc, mailer := newSubscriptionService(t, 11, users)

	_, err := svc.Subscribe(context.Background(), u.ID, dom.PlanBronze)
	assert.ErrorIs(t, err, ErrOutsidePaymentWindow)
	assert.Empty(t, mailer.sent)

	stored, err := users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, dom.PlanFree, stored.Subscription.Plan)
}

func TestSubscribe_FreePlanRejected(t *testing.T) {
	u := testUser(t)
	users := newFakeUserRepo(u)

	// Rejected regardless of the hour.
	for _, hour := range []int{10, 15} {
		svc, _ := newSubscriptionService(t, hour, users)
		_, err := svc.Subscribe(context.Background(), u.ID, dom.PlanFree)
		assert.ErrorIs(t, err, ErrFreePlanPayment)
	}
}

func TestSubscribe_UnknownPlan(t *testing.T) {
	u := testUser(t)
	svc, _ := newSubscriptionService(t, 10, newFakeUserRepo(u))

	_, err := svc.Subscribe(context.Background(), u.ID, dom.Plan("platinum"))
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestSubscribe_UnknownUser(t *testing.T) {
	svc, _ := newSubscriptionService(t, 10, newFakeUserRepo())

	_, err := svc.Subscribe(context.Background(), 99, dom.PlanBronze)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubscribe_MailerFailure(t *testing.T) {
	u := testUser(t)
	users := newFakeUserRepo(u)
	svc, mailer := newSubscriptionService(t, 10, users)
	mailer.err = errors.New("provider down")

	_, err := svc.Subscribe(context.Background(), u.ID, dom.PlanBronze)
	assert.Error(t, err)
}
