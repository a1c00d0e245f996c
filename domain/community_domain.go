package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetPosts      = "posts retrieved successfully"
	MessageSuccessCreatePost    = "post created successfully"
	MessageSuccessDeletePost    = "post deleted successfully"
	MessageSuccessToggleLike    = "like updated"
	MessageSuccessGetComments   = "comments retrieved successfully"
	MessageSuccessCreateComment = "comment added successfully"

	MessageFailedGetPosts      = "failed to retrieve posts"
	MessageFailedCreatePost    = "failed to create post"
	MessageFailedDeletePost    = "failed to delete post"
	MessageFailedToggleLike    = "failed to update like"
	MessageFailedGetComments   = "failed to retrieve comments"
	MessageFailedCreateComment = "failed to add comment"

	ErrPostNotFound     = errors.New("post not found")
	ErrNotPostOwner     = errors.New("you can only delete your own posts")
	ErrEmptyPostContent = errors.New("post content must not be empty")
)

type (
	CreatePostRequest struct {
		Content string                `json:"content" form:"content" validate:"required,max=1000"`
		WineID  string                `json:"wine_id" form:"wine_id" validate:"omitempty,uuid"`
		Image   *multipart.FileHeader `json:"image" form:"image"`
	}

	PostResponse struct {
		ID            string    `json:"id"`
		UserID        string    `json:"user_id"`
		Username      string    `json:"username"`
		WineID        *string   `json:"wine_id,omitempty"`
		Content       string    `json:"content"`
		ImageURL      string    `json:"image_url,omitempty"`
		LikesCount    int64     `json:"likes_count"`
		CommentsCount int64     `json:"comments_count"`
		IsLiked       bool      `json:"is_liked"`
		CreatedAt     time.Time `json:"created_at"`
	}

	ToggleLikeResponse struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}

	CreateCommentRequest struct {
		Content string `json:"content" validate:"required,max=500"`
	}

	CommentResponse struct {
		ID        string    `json:"id"`
		PostID    string    `json:"post_id"`
		UserID    string    `json:"user_id"`
		Username  string    `json:"username"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
	}
)
