package repository

import (
	"time"

	"lernraum_backend/internal/model"

	"gorm.io/gorm"
)

type PresentationRepository struct {
	DB *gorm.DB
}

func NewPresentationRepository(db *gorm.DB) *PresentationRepository {
	return &PresentationRepository{DB: db}
}

func (r *PresentationRepository) Create(slot *model.PresentationSlot) error {
	return r.DB.Create(slot).Error
}

func (r *PresentationRepository) FindByID(id string) (*model.PresentationSlot, error) {
	var slot model.PresentationSlot
	err := r.DB.First(&slot, "id = ?", id).Error
	return &slot, err
}

// List liefert Termine chronologisch aufsteigend. Mit upcomingOnly werden
// vergangene Termine ausgeblendet.
func (r *PresentationRepository) List(upcomingOnly bool) ([]model.PresentationSlot, error) {
	query := r.DB.Order("presentation_date ASC")
	if upcomingOnly {
		query = query.Where("presentation_date >= ?", time.Now().Truncate(24*time.Hour))
	}
	var slots []model.PresentationSlot
	err := query.Find(&slots).Error
	return slots, err
}

func (r *PresentationRepository) Update(slot *model.PresentationSlot) error {
	return r.DB.Save(slot).Error
}

func (r *PresentationRepository) Delete(id string) error {
	return r.DB.Delete(&model.PresentationSlot{}, "id = ?", id).Error
}
