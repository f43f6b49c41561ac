package service

import (
	"errors"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"

	"gorm.io/gorm"
)

type WeekService struct {
	WeekRepo *repository.WeekRepository
}

func NewWeekService(weekRepo *repository.WeekRepository) *WeekService {
	return &WeekService{WeekRepo: weekRepo}
}

func (s *WeekService) CreateWeek(week *model.Week) error {
	_, err := s.WeekRepo.FindByNumber(week.WeekNumber)
	if err == nil {
		return errors.New("Diese Wochennummer existiert bereits")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.WeekRepo.Create(week)
}

func (s *WeekService) GetWeek(weekNumber int, includeUnpublished bool) (*model.Week, error) {
	week, err := s.WeekRepo.FindByNumber(weekNumber)
	if err != nil {
		return nil, err
	}
	if !week.IsPublished && !includeUnpublished {
		return nil, gorm.ErrRecordNotFound
	}
	return week, nil
}

func (s *WeekService) ListWeeks(includeUnpublished bool) ([]model.Week, error) {
	return s.WeekRepo.List(includeUnpublished)
}

// CurrentWeek ist die veröffentlichte Woche mit der höchsten Nummer.
func (s *WeekService) CurrentWeek() (*model.Week, error) {
	weeks, err := s.WeekRepo.List(false)
	if err != nil {
		return nil, err
	}
	if len(weeks) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &weeks[len(weeks)-1], nil
}

func (s *WeekService) UpdateWeek(week *model.Week) error {
	return s.WeekRepo.Update(week)
}

func (s *WeekService) DeleteWeek(id uint) error {
	return s.WeekRepo.Delete(id)
}

func (s *WeekService) AddFile(file *model.WeekFile) error {
	if _, err := s.WeekRepo.FindByID(file.WeekID); err != nil {
		return err
	}
	return s.WeekRepo.AddFile(file)
}

func (s *WeekService) RemoveFile(fileID uint) error {
	if _, err := s.WeekRepo.FindFile(fileID); err != nil {
		return err
	}
	return s.WeekRepo.DeleteFile(fileID)
}
