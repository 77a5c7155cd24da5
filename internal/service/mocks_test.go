package service

import (
	"context"
	"sync"
	"time"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"
	"github.com/Akanksha212004/twiller-2.0/internal/mail"
	"github.com/Akanksha212004/twiller-2.0/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- shared fakes ---

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*dom.User
}

func newFakeUserRepo(users ...dom.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]*dom.User), nextID: 1}
	for i := range users {
		u := users[i]
		if u.ID == 0 {
			u.ID = r.nextID
		}
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.ID] = &u
	}
	return r
}

func (r *fakeUserRepo) byEmail(email string) (*dom.User, bool) {
	for _, u := range r.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byEmail(email); ok {
		return *u, nil
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return *u, nil
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail(u.Email); ok {
		return dom.User{}, errUniqueViolation()
	}
	u.ID = r.nextID
	r.nextID++
	u.JoinedAt = time.Now()
	r.users[u.ID] = &u
	return u, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id int64, u dom.User) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	stored.DisplayName = u.DisplayName
	stored.Avatar = u.Avatar
	stored.Bio = u.Bio
	stored.Location = u.Location
	stored.Website = u.Website
	return *stored, nil
}

func (r *fakeUserRepo) SetNotifications(_ context.Context, id int64, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.NotificationsEnabled = enabled
	return nil
}

func (r *fakeUserRepo) SetSubscription(_ context.Context, id int64, sub dom.Subscription) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	u.Subscription = sub
	return *u, nil
}

func (r *fakeUserRepo) SetPassword(_ context.Context, id int64, hash, forgotDay string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = hash
	u.LastForgotRequest = forgotDay
	return nil
}

func (r *fakeUserRepo) ResetQuota(_ context.Context, plan dom.Plan, quota int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Subscription.Plan == plan && plan != dom.PlanGold {
			u.Subscription.TweetsRemaining = quota
			n++
		}
	}
	return n, nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	nextID  int64
	records []dom.LoginRecord
	err     error
}

func (r *fakeHistoryRepo) Append(_ context.Context, rec dom.LoginRecord) (dom.LoginRecord, error) {
	if r.err != nil {
		return dom.LoginRecord{}, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	rec.LoginTime = time.Now()
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *fakeHistoryRepo) ListByUser(_ context.Context, userID int64) ([]dom.LoginRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dom.LoginRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeTweetRepo struct {
	mu     sync.Mutex
	nextID int64
	users  *fakeUserRepo
	tweets []dom.Tweet
}

func (r *fakeTweetRepo) insert(t dom.Tweet) dom.Tweet {
	r.nextID++
	t.ID = r.nextID
	t.Timestamp = time.Now()
	r.tweets = append(r.tweets, t)
	return t
}

func (r *fakeTweetRepo) Create(_ context.Context, t dom.Tweet) (dom.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(t), nil
}

func (r *fakeTweetRepo) CreateConsumingQuota(_ context.Context, t dom.Tweet) (dom.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users.mu.Lock()
	defer r.users.mu.Unlock()
	u, ok := r.users.users[t.AuthorID]
	if !ok || u.Subscription.Plan == dom.PlanGold || u.Subscription.TweetsRemaining <= 0 {
		return dom.Tweet{}, repo.ErrQuotaExhausted
	}
	u.Subscription.TweetsRemaining--
	return r.insert(t), nil
}

func (r *fakeTweetRepo) List(_ context.Context) ([]dom.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]dom.Tweet, 0, len(r.tweets))
	for i := len(r.tweets) - 1; i >= 0; i-- {
		out = append(out, r.tweets[i])
	}
	return out, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	return nil
}

// fixedClock always reports the same instant.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// kolkata is a fixed IST zone so tests do not depend on host tzdata.
func kolkata() *time.Location {
	return time.FixedZone("IST", 5*3600+30*60)
}

// istAt builds an instant at the given hour in the policy zone used by
// the tests.
func istAt(hour int) time.Time {
	return time.Date(2026, 8, 30, hour, 30, 0, 0, kolkata())
}

func errUniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}
