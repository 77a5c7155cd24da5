package dto

import "time"

// CreateTweetRequest is the JSON body for POST /tweets. Image is an
// optional reference to an already hosted picture.
type CreateTweetRequest struct {
	Author  int64  `json:"author" binding:"required"`
	Content string `json:"content" binding:"required,max=280"`
	Image   string `json:"image" binding:"omitempty,max=500"`
}

// CreateAudioTweetRequest is the JSON body for POST /tweets/audio.
// The clip is already hosted; only its reference is stored.
type CreateAudioTweetRequest struct {
	Author   int64  `json:"author" binding:"required"`
	AudioURL string `json:"audioUrl" binding:"required,max=500"`
}

// TweetAuthorResponse is the populated author on a tweet.
type TweetAuthorResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

// TweetResponse is the public view of a tweet.
type TweetResponse struct {
	ID        int64               `json:"id"`
	Author    TweetAuthorResponse `json:"author"`
	Type      string              `json:"type"`
	Content   string              `json:"content"`
	AudioURL  string              `json:"audioUrl,omitempty"`
	Image     string              `json:"image,omitempty"`
	Likes     int                 `json:"likes"`
	Retweets  int                 `json:"retweets"`
	Comments  int                 `json:"comments"`
	Timestamp time.Time           `json:"timestamp"`
}
