package repo

import (
	"context"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoginHistoryRepo provides the append-only login history.
type LoginHistoryRepo interface {
	Append(ctx context.Context, rec dom.LoginRecord) (dom.LoginRecord, error)
	// ListByUser returns records oldest first (insertion order).
	ListByUser(ctx context.Context, userID int64) ([]dom.LoginRecord, error)
}

// PGLoginHistoryRepo implements LoginHistoryRepo with Postgres.
type PGLoginHistoryRepo struct {
	db *pgxpool.Pool
}

// NewPGLoginHistoryRepo returns a new PGLoginHistoryRepo.
func NewPGLoginHistoryRepo(db *pgxpool.Pool) *PGLoginHistoryRepo {
	return &PGLoginHistoryRepo{db: db}
}

func (r *PGLoginHistoryRepo) Append(ctx context.Context, rec dom.LoginRecord) (dom.LoginRecord, error) {
	query := `
		INSERT INTO login_history (user_id, browser, os, device, ip_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, browser, os, device, ip_address, login_time`
	var out dom.LoginRecord
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.Browser, rec.OS, rec.Device, rec.IPAddress,
	).Scan(&out.ID, &out.UserID, &out.Browser, &out.OS, &out.Device, &out.IPAddress, &out.LoginTime)
	return out, err
}

func (r *PGLoginHistoryRepo) ListByUser(ctx context.Context, userID int64) ([]dom.LoginRecord, error) {
	query := `
		SELECT id, user_id, browser, os, device, ip_address, login_time
		FROM login_history WHERE user_id = $1 ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.LoginRecord
	for rows.Next() {
		var rec dom.LoginRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Browser, &rec.OS, &rec.Device,
			&rec.IPAddress, &rec.LoginTime); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
