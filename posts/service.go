package posts

import (
	"context"

	"postboard/models"
	"postboard/utils"

	"github.com/google/uuid"
)

// Store is the persistence contract the service needs. *models.PostStore implements it.
type Store interface {
	ListAll(ctx context.Context) ([]models.Post, error)
	Insert(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	UpdateContent(ctx context.Context, id, content string) error
	DeleteByID(ctx context.Context, id string) error
}

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Event describes a successful write
type Event struct {
	Type EventType `json:"type"`
	ID   string    `json:"id"`
}

type Notifier interface {
	Notify(event Event)
}

type NewPostInput struct {
	Username string
	Content  string
}

// PostView is a post as shown to readers, with the date already formatted
type PostView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
	Date     string `json:"date"`
}

type Service struct {
	store    Store
	notifier Notifier
	newID    func() string
}

// NewService wires the service to a store. notifier may be nil.
func NewService(store Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		newID:    uuid.NewString,
	}
}

// GetAllPosts returns nil (and no error) when there are no posts
func (s *Service) GetAllPosts(ctx context.Context) ([]PostView, error) {
	posts, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	result := make([]PostView, 0, len(posts))
	for i := range posts {
		result = append(result, toView(&posts[i]))
	}
	return result, nil
}

// CreatePost mints a new id, stores the post and returns the id
func (s *Service) CreatePost(ctx context.Context, in NewPostInput) (string, error) {
	post := models.Post{
		ID:       s.newID(),
		Username: in.Username,
		Content:  in.Content,
	}
	if err := s.store.Insert(ctx, &post); err != nil {
		return "", err
	}
	s.notify(EventCreated, post.ID)
	return post.ID, nil
}

// GetPost returns nil, nil when the post does not exist
func (s *Service) GetPost(ctx context.Context, id string) (*PostView, error) {
	post, err := s.store.FindByID(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}
	view := toView(post)
	return &view, nil
}

func (s *Service) EditPostContent(ctx context.Context, id, content string) error {
	if err := s.store.UpdateContent(ctx, id, content); err != nil {
		return err
	}
	s.notify(EventUpdated, id)
	return nil
}

func (s *Service) RemovePost(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.notify(EventDeleted, id)
	return nil
}

func (s *Service) notify(typ EventType, id string) {
	if s.notifier != nil {
		s.notifier.Notify(Event{Type: typ, ID: id})
	}
}

func toView(p *models.Post) PostView {
	return PostView{
		ID:       p.ID,
		Username: p.Username,
		Content:  p.Content,
		Date:     utils.FormatTimestamp(p.Date),
	}
}
