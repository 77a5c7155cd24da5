package service

import (
	"context"
	"testing"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTweetService(users *fakeUserRepo) (*TweetService, *fakeTweetRepo) {
	tweets := &fakeTweetRepo{users: users}
	return NewTweetService(users, tweets, nil), tweets
}

func TestPostText_ConsumesQuota(t *testing.T) {
	u := testUser(t) // free plan, one tweet
	users := newFakeUserRepo(u)
	svc, _ := newTweetService(users)
	ctx := context.Background()

	tw, err := svc.PostText(ctx, u.ID, "hello world", "")
	require.NoError(t, err)
	assert.Equal(t, dom.TweetText, tw.Type)
	assert.Equal(t, "hello world", tw.Content)
	require.NotNil(t, tw.Author)
	assert.Equal(t, "alice", tw.Author.Username)
	// The attached author reflects the consumed allowance.
	assert.Equal(t, 0, tw.Author.Subscription.TweetsRemaining)

	stored, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Subscription.TweetsRemaining)

	// Free allowance is a single tweet.
	_, err = svc.PostText(ctx, u.ID, "one more", "")
	assert.ErrorIs(t, err, ErrTweetLimit)
}

func TestPostText_GoldUnlimited(t *testing.T) {
	u := testUser(t)
	u.Subscription = dom.NewSubscription(dom.PlanGold)
	users := newFakeUserRepo(u)
	svc, tweets := newTweetService(users)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.PostText(ctx, u.ID, "gold tweet", "")
		require.NoError(t, err)
	}
	assert.Len(t, tweets.tweets, 5)

	stored, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, dom.UnlimitedTweets, stored.Subscription.TweetsRemaining)
}

func TestPostText_WithImage(t *testing.T) {
	u := testUser(t)
	u.Subscription = dom.NewSubscription(dom.PlanBronze)
	users := newFakeUserRepo(u)
	svc, _ := newTweetService(users)
	ctx := context.Background()

	tw, err := svc.PostText(ctx, u.ID, "look at this", "https://cdn.example.com/pic.png")
	require.NoError(t, err)
	assert.Equal(t, dom.TweetText, tw.Type)
	assert.Equal(t, "https://cdn.example.com/pic.png", tw.Image)

	// The picture reference still costs one quota unit like any tweet.
	stored, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Subscription.TweetsRemaining)
}

func TestPostText_EmptyContent(t *testing.T) {
	u := testUser(t)
	svc, _ := newTweetService(newFakeUserRepo(u))

	_, err := svc.PostText(context.Background(), u.ID, "   ", "")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestPostText_UnknownAuthor(t *testing.T) {
	svc, _ := newTweetService(newFakeUserRepo())

	_, err := svc.PostText(context.Background(), 42, "hello", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostAudio(t *testing.T) {
	u := testUser(t)
	u.Subscription = dom.NewSubscription(dom.PlanBronze)
	users := newFakeUserRepo(u)
	svc, _ := newTweetService(users)
	ctx := context.Background()

	tw, err := svc.PostAudio(ctx, u.ID, "https://cdn.example.com/clip.mp3")
	require.NoError(t, err)
	assert.Equal(t, dom.TweetAudio, tw.Type)
	assert.Equal(t, "https://cdn.example.com/clip.mp3", tw.AudioURL)

	stored, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Subscription.TweetsRemaining)

	_, err = svc.PostAudio(ctx, u.ID, "")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestFeed_NewestFirst(t *testing.T) {
	u := testUser(t)
	u.Subscription = dom.NewSubscription(dom.PlanSilver)
	users := newFakeUserRepo(u)
	svc, _ := newTweetService(users)
	ctx := context.Background()

	_, err := svc.PostText(ctx, u.ID, "first", "")
	require.NoError(t, err)
	_, err = svc.PostText(ctx, u.ID, "second", "")
	require.NoError(t, err)

	feed, err := svc.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "second", feed[0].Content)
	assert.Equal(t, "first", feed[1].Content)
}
