package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Akanksha212004/twiller-2.0/internal/cache"
	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"
	"github.com/Akanksha212004/twiller-2.0/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrTweetLimit   = errors.New("tweet limit reached, please upgrade your plan")
	ErrEmptyContent = errors.New("tweet content required")
)

// TweetService gates tweet creation by the author's remaining quota and
// serves the cached global feed.
type TweetService struct {
	users  repo.UserRepo
	tweets repo.TweetRepo
	cache  *cache.FeedCache
	sf     singleflight.Group
}

// NewTweetService creates a TweetService. If c is nil, caching is disabled.
func NewTweetService(users repo.UserRepo, tweets repo.TweetRepo, c *cache.FeedCache) *TweetService {
	return &TweetService{users: users, tweets: tweets, cache: c}
}

// PostText creates a text tweet for the author, consuming one quota
// unit on non-gold plans. image optionally points at an already hosted
// picture.
func (s *TweetService) PostText(ctx context.Context, authorID int64, content, image string) (dom.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return dom.Tweet{}, ErrEmptyContent
	}
	return s.post(ctx, dom.Tweet{
		AuthorID: authorID,
		Type:     dom.TweetText,
		Content:  content,
		Image:    strings.TrimSpace(image),
	})
}

// PostAudio creates an audio tweet pointing at an already hosted clip.
func (s *TweetService) PostAudio(ctx context.Context, authorID int64, audioRef string) (dom.Tweet, error) {
	audioRef = strings.TrimSpace(audioRef)
	if audioRef == "" {
		return dom.Tweet{}, ErrEmptyContent
	}
	return s.post(ctx, dom.Tweet{
		AuthorID: authorID,
		Type:     dom.TweetAudio,
		Content:  "Audio Tweet",
		AudioURL: audioRef,
	})
}

func (s *TweetService) post(ctx context.Context, t dom.Tweet) (dom.Tweet, error) {
	u, err := s.users.GetByID(ctx, t.AuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Tweet{}, ErrUserNotFound
		}
		return dom.Tweet{}, err
	}
	if !u.Subscription.CanPost() {
		return dom.Tweet{}, ErrTweetLimit
	}

	var out dom.Tweet
	if u.Subscription.Plan == dom.PlanGold {
		// Gold never consumes quota.
		out, err = s.tweets.Create(ctx, t)
	} else {
		out, err = s.tweets.CreateConsumingQuota(ctx, t)
		if errors.Is(err, repo.ErrQuotaExhausted) {
			// Lost the race to a concurrent post.
			return dom.Tweet{}, ErrTweetLimit
		}
	}
	if err != nil {
		return dom.Tweet{}, err
	}
	// Mirror the decrement the insert just did, so the attached author
	// shows the post-write allowance.
	u.Subscription.RecordPost()
	out.Author = &u

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	return out, nil
}

// Feed returns all tweets newest first, with authors populated.
func (s *TweetService) Feed(ctx context.Context) ([]dom.Tweet, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("feed", func() (interface{}, error) {
			if list, err := s.cache.GetFeed(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.tweets.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetFeed(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Tweet), nil
	}
	return s.tweets.List(ctx)
}
