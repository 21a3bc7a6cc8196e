package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID       string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username string    `gorm:"type:varchar(100);not null" json:"username"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	Date     time.Time `gorm:"type:datetime;not null;default:CURRENT_TIMESTAMP" json:"date"` // Set by the database on insert
}

// PostStore runs parameterized statements against the posts table.
// Every call is a single autocommit statement.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// ListAll returns every post in table order, or nil when the table is empty.
func (s *PostStore) ListAll(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := s.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, storeError("list", err)
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return posts, nil
}

// Insert stores id, username and content. Date is left to the column default.
func (s *PostStore) Insert(ctx context.Context, post *Post) error {
	err := s.db.WithContext(ctx).
		Select("ID", "Username", "Content").
		Create(post).Error
	if err != nil {
		return storeError("insert", err)
	}
	return nil
}

// FindByID returns nil, nil when no post has the given id.
func (s *PostStore) FindByID(ctx context.Context, id string) (*Post, error) {
	var post Post
	result := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&post)
	if result.Error != nil {
		return nil, storeError("find", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &post, nil
}

// UpdateContent changes only the content column. Unknown ids are not an error.
func (s *PostStore) UpdateContent(ctx context.Context, id, content string) error {
	err := s.db.WithContext(ctx).
		Model(&Post{}).
		Where("id = ?", id).
		Update("content", content).Error
	if err != nil {
		return storeError("update", err)
	}
	return nil
}

// DeleteByID removes the post for good. Unknown ids are not an error.
func (s *PostStore) DeleteByID(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Post{}).Error; err != nil {
		return storeError("delete", err)
	}
	return nil
}
