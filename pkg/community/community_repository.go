package community

import (
	"SipMate-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CommunityRepository interface {
		CreatePost(ctx context.Context, post *entities.CommunityPost) error
		GetPosts(ctx context.Context, page, limit int) ([]entities.CommunityPost, int64, error)
		GetPostByID(ctx context.Context, id string) (*entities.CommunityPost, error)
		DeletePost(ctx context.Context, id string) error

		CountLikes(ctx context.Context, postID string) (int64, error)
		HasLiked(ctx context.Context, postID string, userID string) (bool, error)
		CreateLike(ctx context.Context, like *entities.PostLike) error
		DeleteLike(ctx context.Context, postID string, userID string) error

		CountComments(ctx context.Context, postID string) (int64, error)
		GetComments(ctx context.Context, postID string) ([]entities.Comment, error)
		CreateComment(ctx context.Context, comment *entities.Comment) error
	}

	communityRepository struct {
		db *gorm.DB
	}
)

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) CreatePost(ctx context.Context, post *entities.CommunityPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *communityRepository) GetPosts(ctx context.Context, page, limit int) ([]entities.CommunityPost, int64, error) {
	var posts []entities.CommunityPost
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.CommunityPost{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, count, nil
}

func (r *communityRepository) GetPostByID(ctx context.Context, id string) (*entities.CommunityPost, error) {
	var post entities.CommunityPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *communityRepository) DeletePost(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&entities.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.CommunityPost{}).Error
	})
}

func (r *communityRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PostLike{}).
		Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *communityRepository) HasLiked(ctx context.Context, postID string, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}

func (r *communityRepository) CreateLike(ctx context.Context, like *entities.PostLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *communityRepository) DeleteLike(ctx context.Context, postID string, userID string) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&entities.PostLike{}).Error
}

func (r *communityRepository) CountComments(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Comment{}).
		Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *communityRepository) GetComments(ctx context.Context, postID string) ([]entities.Comment, error) {
	var comments []entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *communityRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
