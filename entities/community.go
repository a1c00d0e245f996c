package entities

import (
	"time"

	"github.com/google/uuid"
)

type CommunityPost struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID  `json:"user_id"`
	Username string     `json:"username"`
	WineID   *uuid.UUID `json:"wine_id,omitempty"`
	Content  string     `gorm:"type:text" json:"content"`
	ImageURL string     `json:"image_url,omitempty"`

	User     *User       `gorm:"foreignKey:UserID"`
	Wine     *Wine       `gorm:"foreignKey:WineID"`
	Likes    []*PostLike `gorm:"foreignKey:PostID"`
	Comments []*Comment  `gorm:"foreignKey:PostID"`
	Timestamp
}

type PostLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PostID    uuid.UUID `gorm:"uniqueIndex:idx_post_likes_post_user" json:"post_id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_post_likes_post_user" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Post *CommunityPost `gorm:"foreignKey:PostID"`
	User *User          `gorm:"foreignKey:UserID"`
}

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Post *CommunityPost `gorm:"foreignKey:PostID"`
	User *User          `gorm:"foreignKey:UserID"`
}
