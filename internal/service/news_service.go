package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"

	"gorm.io/gorm"
)

type NewsService struct {
	NewsRepo *repository.NewsRepository
}

func NewNewsService(newsRepo *repository.NewsRepository) *NewsService {
	return &NewsService{NewsRepo: newsRepo}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify bildet aus einem Titel einen URL-tauglichen Slug.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	replacer := strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")
	slug = replacer.Replace(slug)
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *NewsService) CreateNews(news *model.News) error {
	if news.Slug == "" {
		news.Slug = Slugify(news.Title)
	}

	// Slug-Kollisionen mit Suffix auflösen
	base := news.Slug
	for i := 2; ; i++ {
		_, err := s.NewsRepo.FindBySlug(news.Slug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return err
		}
		news.Slug = fmt.Sprintf("%s-%d", base, i)
	}

	return s.NewsRepo.Create(news)
}

func (s *NewsService) GetNewsByID(id uint) (*model.News, error) {
	return s.NewsRepo.FindByID(id)
}

func (s *NewsService) GetNews(slug string, isMember bool) (*model.News, error) {
	news, err := s.NewsRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !isMember && !news.IsPublic {
		return nil, gorm.ErrRecordNotFound
	}
	if !isMember && (news.PublishedAt == nil || news.PublishedAt.After(time.Now())) {
		return nil, gorm.ErrRecordNotFound
	}
	return news, nil
}

// ListNews liefert je nach Rolle unterschiedliche Sichten: Gäste sehen nur
// öffentliche, Mitglieder auch interne, Admins zusätzlich Entwürfe.
func (s *NewsService) ListNews(page, pageSize int, isMember, isAdmin bool) ([]model.News, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.NewsRepo.List((page-1)*pageSize, pageSize, isAdmin, isMember)
}

func (s *NewsService) UpdateNews(news *model.News) error {
	return s.NewsRepo.Update(news)
}

func (s *NewsService) DeleteNews(id uint) error {
	return s.NewsRepo.Delete(id)
}

func (s *NewsService) Publish(id uint) error {
	news, err := s.NewsRepo.FindByID(id)
	if err != nil {
		return err
	}
	now := time.Now()
	news.PublishedAt = &now
	return s.NewsRepo.Update(news)
}
