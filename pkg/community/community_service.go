package community

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/entities"
	"SipMate-Backend/internal/utils/storage"
	"SipMate-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommunityService interface {
		GetPosts(ctx context.Context, userID string, page, limit int) ([]domain.PostResponse, int64, error)
		CreatePost(ctx context.Context, req domain.CreatePostRequest, userID string) (domain.PostResponse, error)
		DeletePost(ctx context.Context, postID string, userID string) error
		ToggleLike(ctx context.Context, postID string, userID string) (domain.ToggleLikeResponse, error)
		GetComments(ctx context.Context, postID string) ([]domain.CommentResponse, error)
		CreateComment(ctx context.Context, postID string, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error)
	}

	communityService struct {
		communityRepository CommunityRepository
		userService         user.UserService
		s3                  storage.AwsS3
	}
)

func NewCommunityService(communityRepository CommunityRepository, userService user.UserService, s3 storage.AwsS3) CommunityService {
	return &communityService{
		communityRepository: communityRepository,
		userService:         userService,
		s3:                  s3,
	}
}

func (s *communityService) GetPosts(ctx context.Context, userID string, page, limit int) ([]domain.PostResponse, int64, error) {
	posts, count, err := s.communityRepository.GetPosts(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.PostResponse, 0, len(posts))
	for _, post := range posts {
		res, err := s.toResponse(ctx, post, userID)
		if err != nil {
			return nil, 0, err
		}
		response = append(response, res)
	}
	return response, count, nil
}

func (s *communityService) CreatePost(ctx context.Context, req domain.CreatePostRequest, userID string) (domain.PostResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return domain.PostResponse{}, domain.ErrEmptyPostContent
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PostResponse{}, domain.ErrParseUUID
	}

	me, err := s.userService.Me(ctx, userID)
	if err != nil {
		return domain.PostResponse{}, err
	}

	postID := uuid.New()
	post := &entities.CommunityPost{
		ID:       postID,
		UserID:   userUUID,
		Username: me.Username,
		Content:  strings.TrimSpace(req.Content),
	}

	if req.WineID != "" {
		wineUUID, err := uuid.Parse(req.WineID)
		if err != nil {
			return domain.PostResponse{}, domain.ErrParseUUID
		}
		post.WineID = &wineUUID
	}

	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("post-%s", postID.String()),
			req.Image,
			"community-posts",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.PostResponse{}, err
		}
		post.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.communityRepository.CreatePost(ctx, post); err != nil {
		return domain.PostResponse{}, err
	}

	return s.toResponse(ctx, *post, userID)
}

func (s *communityService) DeletePost(ctx context.Context, postID string, userID string) error {
	post, err := s.communityRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPostNotFound
		}
		return err
	}

	if post.UserID.String() != userID {
		return domain.ErrNotPostOwner
	}

	if post.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(post.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.communityRepository.DeletePost(ctx, postID)
}

func (s *communityService) ToggleLike(ctx context.Context, postID string, userID string) (domain.ToggleLikeResponse, error) {
	if _, err := s.communityRepository.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleLikeResponse{}, domain.ErrPostNotFound
		}
		return domain.ToggleLikeResponse{}, err
	}

	liked, err := s.communityRepository.HasLiked(ctx, postID, userID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	if liked {
		if err := s.communityRepository.DeleteLike(ctx, postID, userID); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
	} else {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return domain.ToggleLikeResponse{}, domain.ErrParseUUID
		}
		postUUID, err := uuid.Parse(postID)
		if err != nil {
			return domain.ToggleLikeResponse{}, domain.ErrParseUUID
		}
		if err := s.communityRepository.CreateLike(ctx, &entities.PostLike{
			ID:     uuid.New(),
			PostID: postUUID,
			UserID: userUUID,
		}); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
	}

	count, err := s.communityRepository.CountLikes(ctx, postID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	return domain.ToggleLikeResponse{Liked: !liked, LikesCount: count}, nil
}

func (s *communityService) GetComments(ctx context.Context, postID string) ([]domain.CommentResponse, error) {
	if _, err := s.communityRepository.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	comments, err := s.communityRepository.GetComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CommentResponse, 0, len(comments))
	for _, c := range comments {
		res := domain.CommentResponse{
			ID:        c.ID.String(),
			PostID:    c.PostID.String(),
			UserID:    c.UserID.String(),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
		if c.User != nil {
			res.Username = c.User.Username
		}
		response = append(response, res)
	}
	return response, nil
}

func (s *communityService) CreateComment(ctx context.Context, postID string, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error) {
	if _, err := s.communityRepository.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrPostNotFound
		}
		return domain.CommentResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}
	postUUID, err := uuid.Parse(postID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	me, err := s.userService.Me(ctx, userID)
	if err != nil {
		return domain.CommentResponse{}, err
	}

	comment := &entities.Comment{
		ID:      uuid.New(),
		PostID:  postUUID,
		UserID:  userUUID,
		Content: req.Content,
	}
	if err := s.communityRepository.CreateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return domain.CommentResponse{
		ID:        comment.ID.String(),
		PostID:    postID,
		UserID:    userID,
		Username:  me.Username,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *communityService) toResponse(ctx context.Context, post entities.CommunityPost, userID string) (domain.PostResponse, error) {
	likes, err := s.communityRepository.CountLikes(ctx, post.ID.String())
	if err != nil {
		return domain.PostResponse{}, err
	}
	comments, err := s.communityRepository.CountComments(ctx, post.ID.String())
	if err != nil {
		return domain.PostResponse{}, err
	}
	liked, err := s.communityRepository.HasLiked(ctx, post.ID.String(), userID)
	if err != nil {
		return domain.PostResponse{}, err
	}

	res := domain.PostResponse{
		ID:            post.ID.String(),
		UserID:        post.UserID.String(),
		Username:      post.Username,
		Content:       post.Content,
		ImageURL:      post.ImageURL,
		LikesCount:    likes,
		CommentsCount: comments,
		IsLiked:       liked,
		CreatedAt:     post.CreatedAt,
	}
	if post.WineID != nil {
		wineID := post.WineID.String()
		res.WineID = &wineID
	}
	return res, nil
}
