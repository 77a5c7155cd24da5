package repo

import (
	"context"
	"errors"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrQuotaExhausted is returned when a quota-consuming insert finds no
// tweets remaining.
var ErrQuotaExhausted = errors.New("tweet quota exhausted")

const tweetColumns = `id, author_id, type, content, audio_url, image, likes, retweets, comments, timestamp`

// TweetRepo provides tweet persistence.
type TweetRepo interface {
	// Create inserts without touching the author's quota (gold accounts).
	Create(ctx context.Context, t dom.Tweet) (dom.Tweet, error)
	// CreateConsumingQuota decrements the author's remaining quota and
	// inserts the tweet in one transaction. ErrQuotaExhausted if the
	// conditional decrement matches no row, leaving nothing written.
	CreateConsumingQuota(ctx context.Context, t dom.Tweet) (dom.Tweet, error)
	// List returns all tweets newest first with authors populated.
	List(ctx context.Context) ([]dom.Tweet, error)
}

// PGTweetRepo implements TweetRepo with Postgres.
type PGTweetRepo struct {
	db *pgxpool.Pool
}

// NewPGTweetRepo returns a new PGTweetRepo.
func NewPGTweetRepo(db *pgxpool.Pool) *PGTweetRepo {
	return &PGTweetRepo{db: db}
}

const insertTweetSQL = `
	INSERT INTO tweets (author_id, type, content, audio_url, image)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + tweetColumns

func scanTweet(row pgx.Row) (dom.Tweet, error) {
	var t dom.Tweet
	err := row.Scan(&t.ID, &t.AuthorID, &t.Type, &t.Content, &t.AudioURL, &t.Image,
		&t.Likes, &t.Retweets, &t.Comments, &t.Timestamp)
	return t, err
}

func (r *PGTweetRepo) Create(ctx context.Context, t dom.Tweet) (dom.Tweet, error) {
	return scanTweet(r.db.QueryRow(ctx, insertTweetSQL,
		t.AuthorID, t.Type, t.Content, t.AudioURL, t.Image))
}

// CreateConsumingQuota reserves one tweet from the author's allowance
// and writes the tweet atomically. The conditional UPDATE is the whole
// admission check: concurrent posts against a tight quota serialize on
// the row and cannot drive the counter negative.
func (r *PGTweetRepo) CreateConsumingQuota(ctx context.Context, t dom.Tweet) (dom.Tweet, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Tweet{}, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE users SET tweets_remaining = tweets_remaining - 1
		WHERE id = $1 AND plan <> 'gold' AND tweets_remaining > 0`,
		t.AuthorID)
	if err != nil {
		return dom.Tweet{}, err
	}
	if tag.RowsAffected() == 0 {
		return dom.Tweet{}, ErrQuotaExhausted
	}

	out, err := scanTweet(tx.QueryRow(ctx, insertTweetSQL,
		t.AuthorID, t.Type, t.Content, t.AudioURL, t.Image))
	if err != nil {
		return dom.Tweet{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return dom.Tweet{}, err
	}
	return out, nil
}

func (r *PGTweetRepo) List(ctx context.Context) ([]dom.Tweet, error) {
	query := `
		SELECT t.id, t.author_id, t.type, t.content, t.audio_url, t.image,
		       t.likes, t.retweets, t.comments, t.timestamp,
		       u.id, u.email, u.username, u.display_name, u.avatar
		FROM tweets t
		JOIN users u ON u.id = t.author_id
		ORDER BY t.timestamp DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Tweet
	for rows.Next() {
		var t dom.Tweet
		var a dom.User
		if err := rows.Scan(&t.ID, &t.AuthorID, &t.Type, &t.Content, &t.AudioURL, &t.Image,
			&t.Likes, &t.Retweets, &t.Comments, &t.Timestamp,
			&a.ID, &a.Email, &a.Username, &a.DisplayName, &a.Avatar); err != nil {
			return nil, err
		}
		t.Author = &a
		list = append(list, t)
	}
	return list, rows.Err()
}
