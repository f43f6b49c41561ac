package service

import (
	"errors"
	"time"

	"lernraum_backend/internal/config"
	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo   *repository.UserRepository
	InviteRepo *repository.InviteRepository
	Cfg        *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, inviteRepo *repository.InviteRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:   userRepo,
		InviteRepo: inviteRepo,
		Cfg:        cfg,
	}
}

// Register legt ein Konto an. Ohne gültigen Einladungscode gibt es keine
// Registrierung; der Code bestimmt die Startrolle.
func (s *AuthService) Register(user *model.User, inviteCode string) error {
	invite, err := s.resolveInvite(inviteCode)
	if err != nil {
		return err
	}

	_, err = s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	_, err = s.UserRepo.FindByUsername(user.Username)
	if err == nil {
		return util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.Role = invite.Role
	if user.Role == "" {
		user.Role = model.Student
	}
	user.LastLogin = time.Now()
	user.LastSeen = time.Now()

	if err := s.UserRepo.Create(user); err != nil {
		return err
	}

	return s.InviteRepo.IncrementUsage(invite.ID)
}

// resolveInvite vergleicht den Klartextcode gegen alle gespeicherten
// Hashes. Die Codes werden nie im Klartext gespeichert.
func (s *AuthService) resolveInvite(code string) (*model.InviteCode, error) {
	if code == "" {
		return nil, util.ErrInvalidInvite
	}

	invites, err := s.InviteRepo.FindAll()
	if err != nil {
		return nil, err
	}

	for i := range invites {
		invite := &invites[i]
		if bcrypt.CompareHashAndPassword([]byte(invite.CodeHash), []byte(code)) != nil {
			continue
		}
		if invite.ExpiresAt != nil && invite.ExpiresAt.Before(time.Now()) {
			return nil, util.ErrInviteExpired
		}
		if invite.MaxUses > 0 && invite.UsedCount >= invite.MaxUses {
			return nil, util.ErrInviteExhausted
		}
		return invite, nil
	}

	return nil, util.ErrInvalidInvite
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if user.Disabled {
		return "", errors.New("Konto ist deaktiviert")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	s.UserRepo.UpdateLastLogin(user.ID)

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}

func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return errors.New("Aktuelles Passwort ist falsch")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Update(user)
}
