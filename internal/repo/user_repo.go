package repo

import (
	"context"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, username, display_name, password_hash, avatar, bio, location,
	website, notifications_enabled, plan, tweets_remaining, last_forgot_request, joined_at`

// UserRepo provides user persistence.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
	UpdateProfile(ctx context.Context, id int64, u dom.User) (dom.User, error)
	SetNotifications(ctx context.Context, id int64, enabled bool) error
	SetSubscription(ctx context.Context, id int64, sub dom.Subscription) (dom.User, error)
	SetPassword(ctx context.Context, id int64, hash, forgotDay string) error
	ResetQuota(ctx context.Context, plan dom.Plan, quota int) (int64, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

func scanUser(row pgx.Row) (dom.User, error) {
	var u dom.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.DisplayName, &u.PasswordHash,
		&u.Avatar, &u.Bio, &u.Location, &u.Website,
		&u.NotificationsEnabled, &u.Subscription.Plan, &u.Subscription.TweetsRemaining,
		&u.LastForgotRequest, &u.JoinedAt,
	)
	return u, err
}

// GetByEmail returns the user by (already normalized) email.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// GetByID returns the user by ID.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (email, username, display_name, password_hash, plan, tweets_remaining)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query,
		u.Email, u.Username, u.DisplayName, u.PasswordHash,
		u.Subscription.Plan, u.Subscription.TweetsRemaining,
	))
}

// UpdateProfile overwrites the editable profile columns with the values in u.
func (r *PGUserRepo) UpdateProfile(ctx context.Context, id int64, u dom.User) (dom.User, error) {
	query := `
		UPDATE users
		SET display_name = $2, avatar = $3, bio = $4, location = $5, website = $6
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query,
		id, u.DisplayName, u.Avatar, u.Bio, u.Location, u.Website))
}

// SetNotifications flips the notifications flag.
func (r *PGUserRepo) SetNotifications(ctx context.Context, id int64, enabled bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET notifications_enabled = $2 WHERE id = $1`, id, enabled)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetSubscription overwrites the plan and remaining quota.
func (r *PGUserRepo) SetSubscription(ctx context.Context, id int64, sub dom.Subscription) (dom.User, error) {
	query := `
		UPDATE users SET plan = $2, tweets_remaining = $3 WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, id, sub.Plan, sub.TweetsRemaining))
}

// SetPassword stores a new password hash and the day of the reset request.
func (r *PGUserRepo) SetPassword(ctx context.Context, id int64, hash, forgotDay string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, last_forgot_request = $3 WHERE id = $1`,
		id, hash, forgotDay)
	return err
}

// ResetQuota restores the allowance for every account on the given
// plan. Gold never goes through here (its sentinel is permanent).
func (r *PGUserRepo) ResetQuota(ctx context.Context, plan dom.Plan, quota int) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET tweets_remaining = $2 WHERE plan = $1 AND plan <> 'gold'`,
		plan, quota)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
