package domain

import "time"

// TweetType distinguishes plain text tweets from audio ones.
type TweetType string

const (
	TweetText  TweetType = "text"
	TweetAudio TweetType = "audio"
)

// Tweet is the domain entity for a post. Counters are mutated by the
// engagement surface; everything else is read-only after creation.
type Tweet struct {
	ID       int64
	AuthorID int64
	Type     TweetType
	Content  string
	AudioURL string
	Image    string

	Likes    int
	Retweets int
	Comments int

	Timestamp time.Time

	// Author is populated on reads that join the users table.
	Author *User
}
