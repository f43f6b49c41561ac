package controller

import (
	"errors"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

// RegisterRequest Registrierung mit Einladungscode
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	InviteCode string `json:"inviteCode" binding:"required"`
}

// Register godoc
// @Summary Neues Konto registrieren
// @Description Legt ein Konto an; ohne gültigen Einladungscode wird die Registrierung abgelehnt
// @Tags Authentifizierung
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Registrierungsdaten"
// @Success 201 {object} util.Response{data=object} "Konto angelegt"
// @Failure 400 {object} util.Response "Ungültige Eingaben oder Einladungscode"
// @Failure 409 {object} util.Response "E-Mail oder Benutzername bereits vergeben"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := c.AuthService.Register(user, req.InviteCode); err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered), errors.Is(err, util.ErrUsernameTaken):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrInvalidInvite),
			errors.Is(err, util.ErrInviteExpired),
			errors.Is(err, util.ErrInviteExhausted):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Anmelden
// @Description Prüft die Zugangsdaten und liefert ein JWT
// @Tags Authentifizierung
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Zugangsdaten"
// @Success 200 {object} util.Response{data=object} "Token"
// @Failure 401 {object} util.Response "Ungültige Zugangsdaten"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, 401, err.Error())
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// Me godoc
// @Summary Eigenes Profil abrufen
// @Tags Authentifizierung
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangePassword godoc
// @Summary Passwort ändern
// @Tags Authentifizierung
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ChangePasswordRequest true "Altes und neues Passwort"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Aktuelles Passwort falsch"
// @Router /api/auth/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.ChangePassword(claims.UserID, req.OldPassword, req.NewPassword); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, nil)
}
