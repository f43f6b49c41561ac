package util

import "errors"

var (
	ErrUserNotFound      = errors.New("Benutzer nicht gefunden")
	ErrEmailRegistered   = errors.New("Diese E-Mail ist bereits registriert")
	ErrUsernameTaken     = errors.New("Dieser Benutzername ist bereits vergeben")
	ErrInvalidInvite     = errors.New("Ungültiger Einladungscode")
	ErrInviteExpired     = errors.New("Einladungscode abgelaufen")
	ErrInviteExhausted   = errors.New("Einladungscode aufgebraucht")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrSurveyNotFound    = errors.New("Umfrage nicht verfügbar")
	ErrSurveyInactive    = errors.New("Umfrage nicht verfügbar")
	ErrLoginRequired     = errors.New("Bitte einloggen, um an dieser Umfrage teilzunehmen")
	ErrProjectFull       = errors.New("Projekt ist bereits voll")
	ErrAlreadyJoined     = errors.New("Bereits als Teilnehmer eingetragen")
	ErrTopicLocked       = errors.New("Thema ist gesperrt")
	ErrIdeasNotSet       = errors.New("Ideen-Generator ist nicht konfiguriert")
	ErrIdeaQuotaExceeded = errors.New("Tageslimit für generierte Ideen erreicht")
)
