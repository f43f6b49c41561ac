package service

import (
	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"
)

type ForumService struct {
	ForumRepo *repository.ForumRepository
}

func NewForumService(forumRepo *repository.ForumRepository) *ForumService {
	return &ForumService{ForumRepo: forumRepo}
}

func (s *ForumService) ListCategories() ([]model.ForumCategory, error) {
	return s.ForumRepo.ListCategories()
}

func (s *ForumService) CreateCategory(category *model.ForumCategory) error {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	return s.ForumRepo.CreateCategory(category)
}

func (s *ForumService) CreateTopic(categorySlug string, topic *model.ForumTopic) error {
	category, err := s.ForumRepo.FindCategoryBySlug(categorySlug)
	if err != nil {
		return err
	}
	topic.CategoryID = category.ID
	return s.ForumRepo.CreateTopic(topic)
}

func (s *ForumService) ListTopics(categorySlug string, page, pageSize int) ([]model.ForumTopic, int64, error) {
	category, err := s.ForumRepo.FindCategoryBySlug(categorySlug)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.ForumRepo.ListTopics(category.ID, (page-1)*pageSize, pageSize)
}

// GetTopic lädt Thema samt Beiträgen und zählt den Aufruf.
func (s *ForumService) GetTopic(topicID uint) (*model.ForumTopic, []model.ForumPost, error) {
	topic, err := s.ForumRepo.FindTopic(topicID)
	if err != nil {
		return nil, nil, err
	}

	s.ForumRepo.IncrementViews(topicID)

	posts, err := s.ForumRepo.ListPosts(topicID)
	if err != nil {
		return nil, nil, err
	}
	return topic, posts, nil
}

// CreatePost hängt eine Antwort an ein Thema. Gesperrte Themen nehmen
// keine neuen Beiträge an, auch nicht von Admins.
func (s *ForumService) CreatePost(post *model.ForumPost) error {
	topic, err := s.ForumRepo.FindTopic(post.TopicID)
	if err != nil {
		return err
	}
	if topic.IsLocked {
		return util.ErrTopicLocked
	}

	if post.ParentID != nil {
		parent, err := s.ForumRepo.FindPost(*post.ParentID)
		if err != nil {
			return err
		}
		// Nur eine Antwortebene: tiefere Antworten hängen am Wurzelbeitrag
		if parent.ParentID != nil {
			post.ParentID = parent.ParentID
		}
	}

	if err := s.ForumRepo.CreatePost(post); err != nil {
		return err
	}
	s.ForumRepo.TouchTopic(post.TopicID)
	return nil
}

func (s *ForumService) DeletePost(postID uint, userID uint, isAdmin bool) error {
	post, err := s.ForumRepo.FindPost(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ForumRepo.DeletePost(postID)
}

func (s *ForumService) SetPinned(topicID uint, pinned bool) error {
	topic, err := s.ForumRepo.FindTopic(topicID)
	if err != nil {
		return err
	}
	topic.IsPinned = pinned
	return s.ForumRepo.UpdateTopic(topic)
}

func (s *ForumService) SetLocked(topicID uint, locked bool) error {
	topic, err := s.ForumRepo.FindTopic(topicID)
	if err != nil {
		return err
	}
	topic.IsLocked = locked
	return s.ForumRepo.UpdateTopic(topic)
}

func (s *ForumService) DeleteTopic(topicID uint, userID uint, isAdmin bool) error {
	topic, err := s.ForumRepo.FindTopic(topicID)
	if err != nil {
		return err
	}
	if topic.AuthorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ForumRepo.DeleteTopic(topicID)
}
