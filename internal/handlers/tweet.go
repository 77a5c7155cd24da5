package handlers

import (
	"errors"
	"net/http"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"
	"github.com/Akanksha212004/twiller-2.0/internal/dto"
	"github.com/Akanksha212004/twiller-2.0/internal/service"

	"github.com/gin-gonic/gin"
)

// TweetHandler handles tweet creation and the feed.
type TweetHandler struct {
	svc *service.TweetService
}

// NewTweetHandler returns a new TweetHandler.
func NewTweetHandler(svc *service.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

func tweetToResponse(t dom.Tweet) dto.TweetResponse {
	resp := dto.TweetResponse{
		ID:        t.ID,
		Type:      string(t.Type),
		Content:   t.Content,
		AudioURL:  t.AudioURL,
		Image:     t.Image,
		Likes:     t.Likes,
		Retweets:  t.Retweets,
		Comments:  t.Comments,
		Timestamp: t.Timestamp,
	}
	if t.Author != nil {
		resp.Author = dto.TweetAuthorResponse{
			ID:          t.Author.ID,
			Email:       t.Author.Email,
			Username:    t.Author.Username,
			DisplayName: t.Author.DisplayName,
			Avatar:      t.Author.Avatar,
		}
	}
	return resp
}

func (h *TweetHandler) respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, service.ErrTweetLimit):
		c.JSON(http.StatusForbidden, gin.H{"message": "Tweet limit reached. Please upgrade your plan."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tweet"})
	}
}

// Create godoc
// @Summary      Post a text tweet
// @Description  Consumes one quota unit unless the author is on gold.
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTweetRequest  true  "Tweet"
// @Success      201   {object}  dto.TweetResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	var req dto.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.PostText(c.Request.Context(), req.Author, req.Content, req.Image)
	if err != nil {
		h.respondPostError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tweetToResponse(t))
}

// CreateAudio godoc
// @Summary      Post an audio tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAudioTweetRequest  true  "Audio tweet"
// @Success      201   {object}  dto.TweetResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tweets/audio [post]
func (h *TweetHandler) CreateAudio(c *gin.Context) {
	var req dto.CreateAudioTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.PostAudio(c.Request.Context(), req.Author, req.AudioURL)
	if err != nil {
		h.respondPostError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tweetToResponse(t))
}

// List godoc
// @Summary      Global feed, newest first
// @Tags         tweets
// @Produce      json
// @Success      200  {array}  dto.TweetResponse
// @Router       /tweets [get]
func (h *TweetHandler) List(c *gin.Context) {
	tweets, err := h.svc.Feed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tweets"})
		return
	}
	out := make([]dto.TweetResponse, 0, len(tweets))
	for _, t := range tweets {
		out = append(out, tweetToResponse(t))
	}
	c.JSON(http.StatusOK, out)
}
