package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lernraum_backend/internal/config"
	"lernraum_backend/internal/util"
	"lernraum_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// IdeaService generiert Projektideen über eine OpenRouter-kompatible
// Chat-Completions-API. Redis begrenzt die Abrufe pro Benutzer und Tag.
type IdeaService struct {
	Cfg    *config.Config
	Redis  *redis.Client
	Client *http.Client
}

func NewIdeaService(cfg *config.Config, rdb *redis.Client) *IdeaService {
	return &IdeaService{
		Cfg:    cfg,
		Redis:  rdb,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

var difficultyDescriptions = map[int]string{
	1: "sehr einfach für absolute Anfänger, die gerade erst mit dem Programmieren beginnen",
	2: "einfach für Anfänger mit ersten Grundkenntnissen",
	3: "mittelschwer für Lernende mit grundlegenden Programmierkenntnissen",
	4: "fortgeschritten für Entwickler mit solider Erfahrung",
	5: "anspruchsvoll für erfahrene Entwickler mit guten Kenntnissen",
}

const ideaPromptTemplate = `Du bist ein kreativer Projektideen-Generator für "Vibe Coding" - eine intuitive, flow-basierte Art des Programmierens, bei der man schnell prototypen erstellt und iteriert.

Generiere EINE konkrete Projektidee mit dem Schwierigkeitsgrad: %s.

Die Projektidee sollte:
- Spaß machen und motivierend sein
- Für Vibe Coding geeignet sein (schnell prototypierbar, visuell/interaktiv wenn möglich)
- Einen klaren praktischen Nutzen oder Lerneffekt haben
- Mit modernen Web-Technologien umsetzbar sein (z.B. React, Next.js, TypeScript, Python, etc.)

Formatiere die Antwort GENAU so:

**Projektidee:** [Ein prägnanter, einprägsamer Titel]

**Beschreibung:**
[2-3 Sätze, die das Projekt beschreiben und warum es interessant ist]

**Technologien:**
- [Technologie 1]
- [Technologie 2]
- [Technologie 3]
(maximal 4-5 Technologien)

**Funktionen:**
- [Funktion 1]
- [Funktion 2]
- [Funktion 3]
(3-5 Kernfunktionen)

**Lernziele:**
- [Lernziel 1]
- [Lernziel 2]
- [Lernziel 3]
(2-4 Hauptlernziele)

**Vibe-Faktor:**
[1-2 Sätze darüber, warum dieses Projekt perfekt für Vibe Coding ist - was macht es intuitiv, schnell prototypierbar und spaßig?]

Antworte NUR auf Deutsch und halte dich strikt an das Format.`

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateIdea liefert eine Idee für den gewünschten Schwierigkeitsgrad
// (1 bis 5, Standard 3).
func (s *IdeaService) GenerateIdea(ctx context.Context, userID uint, difficulty int) (string, error) {
	if s.Cfg.Ideas.APIKey == "" {
		return "", util.ErrIdeasNotSet
	}

	if err := s.checkQuota(ctx, userID); err != nil {
		return "", err
	}

	description, ok := difficultyDescriptions[difficulty]
	if !ok {
		description = difficultyDescriptions[3]
	}

	baseURL := s.Cfg.Ideas.BaseURL
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	model := s.Cfg.Ideas.Model
	if model == "" {
		model = "deepseek/deepseek-chat-v3-0324"
	}

	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(ideaPromptTemplate, description)},
		},
		Temperature: 0.8,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Cfg.Ideas.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("idea generation upstream error",
			zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("Fehler beim Generieren der Idee")
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("Keine Idee generiert")
	}

	return parsed.Choices[0].Message.Content, nil
}

// checkQuota zählt Abrufe pro Benutzer und Kalendertag. Der Schlüssel
// läuft am Tagesende gemeinsam mit dem Kontingent ab.
func (s *IdeaService) checkQuota(ctx context.Context, userID uint) error {
	if s.Redis == nil || s.Cfg.Ideas.DailyLimit <= 0 {
		return nil
	}

	key := fmt.Sprintf("ideas:quota:%d:%s", userID, time.Now().Format("2006-01-02"))
	count, err := s.Redis.Incr(ctx, key).Result()
	if err != nil {
		// Redis-Ausfall blockiert das Feature nicht
		logger.Log.Warn("idea quota check failed", zap.Error(err))
		return nil
	}
	if count == 1 {
		s.Redis.Expire(ctx, key, 24*time.Hour)
	}
	if count > int64(s.Cfg.Ideas.DailyLimit) {
		return util.ErrIdeaQuotaExceeded
	}
	return nil
}
