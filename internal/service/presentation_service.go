package service

import (
	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"
)

type PresentationService struct {
	PresentationRepo *repository.PresentationRepository
}

func NewPresentationService(repo *repository.PresentationRepository) *PresentationService {
	return &PresentationService{PresentationRepo: repo}
}

func (s *PresentationService) CreateSlot(slot *model.PresentationSlot) error {
	return s.PresentationRepo.Create(slot)
}

func (s *PresentationService) ListSlots(upcomingOnly bool) ([]model.PresentationSlot, error) {
	return s.PresentationRepo.List(upcomingOnly)
}

func (s *PresentationService) UpdateSlot(slot *model.PresentationSlot, userID uint, isAdmin bool) error {
	existing, err := s.PresentationRepo.FindByID(slot.ID)
	if err != nil {
		return err
	}
	if existing.CreatorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	slot.CreatorID = existing.CreatorID
	return s.PresentationRepo.Update(slot)
}

func (s *PresentationService) DeleteSlot(id string, userID uint, isAdmin bool) error {
	slot, err := s.PresentationRepo.FindByID(id)
	if err != nil {
		return err
	}
	if slot.CreatorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.PresentationRepo.Delete(id)
}
