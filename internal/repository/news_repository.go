package repository

import (
	"time"

	"lernraum_backend/internal/model"

	"gorm.io/gorm"
)

type NewsRepository struct {
	DB *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{DB: db}
}

func (r *NewsRepository) Create(news *model.News) error {
	return r.DB.Create(news).Error
}

func (r *NewsRepository) FindByID(id uint) (*model.News, error) {
	var news model.News
	err := r.DB.First(&news, id).Error
	return &news, err
}

func (r *NewsRepository) FindBySlug(slug string) (*model.News, error) {
	var news model.News
	err := r.DB.Where("slug = ?", slug).First(&news).Error
	return &news, err
}

// List liefert Beiträge absteigend nach Veröffentlichungsdatum. Ohne
// includeDrafts werden nur veröffentlichte Beiträge zurückgegeben, ohne
// includePrivate nur öffentlich sichtbare.
func (r *NewsRepository) List(offset, limit int, includeDrafts, includePrivate bool) ([]model.News, int64, error) {
	query := r.DB.Model(&model.News{})
	if !includeDrafts {
		query = query.Where("published_at IS NOT NULL AND published_at <= ?", time.Now())
	}
	if !includePrivate {
		query = query.Where("is_public = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.News
	err := query.Order("published_at DESC, created_at DESC").
		Offset(offset).Limit(limit).Find(&items).Error
	return items, total, err
}

func (r *NewsRepository) Update(news *model.News) error {
	return r.DB.Save(news).Error
}

func (r *NewsRepository) Delete(id uint) error {
	return r.DB.Delete(&model.News{}, id).Error
}
