package service

import (
	"strings"
	"time"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type InviteService struct {
	InviteRepo *repository.InviteRepository
}

func NewInviteService(inviteRepo *repository.InviteRepository) *InviteService {
	return &InviteService{InviteRepo: inviteRepo}
}

// CreateInvite erzeugt einen neuen Code. Der Klartext wird genau einmal
// zurückgegeben, gespeichert wird nur der bcrypt-Hash.
func (s *InviteService) CreateInvite(label string, role model.UserRole, maxUses int, expiresAt *time.Time) (*model.InviteCode, string, error) {
	code := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	if role == "" {
		role = model.Student
	}

	invite := &model.InviteCode{
		Label:     label,
		CodeHash:  string(hash),
		Role:      role,
		MaxUses:   maxUses,
		ExpiresAt: expiresAt,
	}
	if err := s.InviteRepo.Create(invite); err != nil {
		return nil, "", err
	}
	return invite, code, nil
}

func (s *InviteService) ListInvites() ([]model.InviteCode, error) {
	return s.InviteRepo.List()
}

func (s *InviteService) DeleteInvite(id uint) error {
	if _, err := s.InviteRepo.FindByID(id); err != nil {
		return util.ErrInvalidInvite
	}
	return s.InviteRepo.Delete(id)
}
