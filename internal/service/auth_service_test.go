package service

import (
	"testing"
	"time"

	"lernraum_backend/internal/config"
	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *InviteService, *gorm.DB) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-only-for-unit-tests-123456"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(userRepo, inviteRepo, cfg), NewInviteService(inviteRepo), db
}

func TestRegisterWithValidInvite(t *testing.T) {
	auth, invites, db := newAuthService(t)
	invite, code, err := invites.CreateInvite("Kurs 2026", model.Student, 5, nil)
	require.NoError(t, err)
	require.Len(t, code, 16)
	assert.NotContains(t, invite.CodeHash, code)

	user := &model.User{Username: "mia", Email: "mia@example.com", Password: "geheim123"}
	require.NoError(t, auth.Register(user, code))

	var stored model.User
	require.NoError(t, db.Where("email = ?", "mia@example.com").First(&stored).Error)
	assert.Equal(t, model.Student, stored.Role)
	assert.NotEqual(t, "geheim123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("geheim123")))

	var storedInvite model.InviteCode
	require.NoError(t, db.First(&storedInvite, invite.ID).Error)
	assert.Equal(t, 1, storedInvite.UsedCount)
}

func TestRegisterAdminInvite(t *testing.T) {
	auth, invites, db := newAuthService(t)
	_, code, err := invites.CreateInvite("Team", model.Admin, 1, nil)
	require.NoError(t, err)

	user := &model.User{Username: "chef", Email: "chef@example.com", Password: "geheim123"}
	require.NoError(t, auth.Register(user, code))

	var stored model.User
	require.NoError(t, db.Where("username = ?", "chef").First(&stored).Error)
	assert.Equal(t, model.Admin, stored.Role)
}

func TestRegisterInvalidInvite(t *testing.T) {
	auth, _, _ := newAuthService(t)

	user := &model.User{Username: "mia", Email: "mia@example.com", Password: "geheim123"}
	assert.ErrorIs(t, auth.Register(user, "falscher-code"), util.ErrInvalidInvite)
	assert.ErrorIs(t, auth.Register(user, ""), util.ErrInvalidInvite)
}

func TestRegisterExpiredInvite(t *testing.T) {
	auth, invites, _ := newAuthService(t)
	past := time.Now().Add(-time.Hour)
	_, code, err := invites.CreateInvite("abgelaufen", model.Student, 5, &past)
	require.NoError(t, err)

	user := &model.User{Username: "mia", Email: "mia@example.com", Password: "geheim123"}
	assert.ErrorIs(t, auth.Register(user, code), util.ErrInviteExpired)
}

func TestRegisterExhaustedInvite(t *testing.T) {
	auth, invites, _ := newAuthService(t)
	_, code, err := invites.CreateInvite("einmalig", model.Student, 1, nil)
	require.NoError(t, err)

	first := &model.User{Username: "erste", Email: "erste@example.com", Password: "geheim123"}
	require.NoError(t, auth.Register(first, code))

	second := &model.User{Username: "zweite", Email: "zweite@example.com", Password: "geheim123"}
	assert.ErrorIs(t, auth.Register(second, code), util.ErrInviteExhausted)
}

func TestRegisterUnlimitedInvite(t *testing.T) {
	auth, invites, _ := newAuthService(t)
	// max_uses 0 bedeutet unbegrenzt
	_, code, err := invites.CreateInvite("offen", model.Student, 0, nil)
	require.NoError(t, err)

	for i, name := range []string{"a", "b", "c"} {
		user := &model.User{
			Username: name,
			Email:    name + "@example.com",
			Password: "geheim123",
		}
		require.NoError(t, auth.Register(user, code), "user %d", i)
	}
}

func TestRegisterDuplicateEmailAndUsername(t *testing.T) {
	auth, invites, _ := newAuthService(t)
	_, code, err := invites.CreateInvite("Kurs", model.Student, 10, nil)
	require.NoError(t, err)

	user := &model.User{Username: "mia", Email: "mia@example.com", Password: "geheim123"}
	require.NoError(t, auth.Register(user, code))

	sameEmail := &model.User{Username: "anders", Email: "mia@example.com", Password: "geheim123"}
	assert.ErrorIs(t, auth.Register(sameEmail, code), util.ErrEmailRegistered)

	sameName := &model.User{Username: "mia", Email: "neu@example.com", Password: "geheim123"}
	assert.ErrorIs(t, auth.Register(sameName, code), util.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	auth, invites, db := newAuthService(t)
	_, code, err := invites.CreateInvite("Kurs", model.Student, 10, nil)
	require.NoError(t, err)

	user := &model.User{Username: "mia", Email: "mia@example.com", Password: "geheim123"}
	require.NoError(t, auth.Register(user, code))

	token, err := auth.Login("mia@example.com", "geheim123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = auth.Login("mia@example.com", "falsch")
	assert.Error(t, err)

	_, err = auth.Login("niemand@example.com", "geheim123")
	assert.Error(t, err)

	require.NoError(t, db.Model(&model.User{}).
		Where("email = ?", "mia@example.com").Update("disabled", true).Error)
	_, err = auth.Login("mia@example.com", "geheim123")
	require.Error(t, err)
	assert.Equal(t, "Konto ist deaktiviert", err.Error())
}
