package repository

import (
	"lernraum_backend/internal/model"

	"gorm.io/gorm"
)

type WeekRepository struct {
	DB *gorm.DB
}

func NewWeekRepository(db *gorm.DB) *WeekRepository {
	return &WeekRepository{DB: db}
}

func (r *WeekRepository) Create(week *model.Week) error {
	return r.DB.Create(week).Error
}

func (r *WeekRepository) FindByID(id uint) (*model.Week, error) {
	var week model.Week
	err := r.DB.Preload("Files", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).First(&week, id).Error
	return &week, err
}

func (r *WeekRepository) FindByNumber(weekNumber int) (*model.Week, error) {
	var week model.Week
	err := r.DB.Preload("Files", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Where("week_number = ?", weekNumber).First(&week).Error
	return &week, err
}

// List liefert Wochen aufsteigend nach Wochennummer.
func (r *WeekRepository) List(includeUnpublished bool) ([]model.Week, error) {
	query := r.DB.Preload("Files", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	})
	if !includeUnpublished {
		query = query.Where("is_published = ?", true)
	}
	var weeks []model.Week
	err := query.Order("week_number ASC").Find(&weeks).Error
	return weeks, err
}

func (r *WeekRepository) Update(week *model.Week) error {
	return r.DB.Save(week).Error
}

func (r *WeekRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("week_id = ?", id).Delete(&model.WeekFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Week{}, id).Error
	})
}

func (r *WeekRepository) AddFile(file *model.WeekFile) error {
	return r.DB.Create(file).Error
}

func (r *WeekRepository) FindFile(fileID uint) (*model.WeekFile, error) {
	var file model.WeekFile
	err := r.DB.First(&file, fileID).Error
	return &file, err
}

func (r *WeekRepository) DeleteFile(fileID uint) error {
	return r.DB.Delete(&model.WeekFile{}, fileID).Error
}
