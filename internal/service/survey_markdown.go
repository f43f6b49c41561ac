package service

import "regexp"

// MarkdownSegment ist entweder ein Stück Markdown-Text oder ein
// Umfrage-Platzhalter mit dem referenzierten Token.
type MarkdownSegment struct {
	Type  string `json:"type"` // "text" | "survey"
	Text  string `json:"text,omitempty"`
	Token string `json:"token,omitempty"`
}

// Platzhalter der Form <Survey{token}>, Token aus [A-Za-z0-9_-]+.
var surveyPlaceholder = regexp.MustCompile(`<Survey([A-Za-z0-9_-]+)>`)

// SplitMarkdownSurveys zerlegt Markdown-Inhalt an den Umfrage-Platzhaltern.
// Die Funktion ist rein: sie prüft nicht, ob ein Token existiert, das
// entscheidet erst der Aufrufer. Fehlgeformte Platzhalter (leeres oder
// ungültiges Token) bleiben als Text erhalten, leere Textsegmente werden
// verworfen.
func SplitMarkdownSurveys(content string) []MarkdownSegment {
	var segments []MarkdownSegment
	rest := content

	for {
		loc := surveyPlaceholder.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if before := rest[:loc[0]]; before != "" {
			segments = append(segments, MarkdownSegment{Type: "text", Text: before})
		}
		segments = append(segments, MarkdownSegment{Type: "survey", Token: rest[loc[2]:loc[3]]})
		rest = rest[loc[1]:]
	}

	if rest != "" {
		segments = append(segments, MarkdownSegment{Type: "text", Text: rest})
	}
	return segments
}

// SurveyTokens liefert die Tokens aller Platzhalter in Dokumentreihenfolge,
// Duplikate eingeschlossen.
func SurveyTokens(content string) []string {
	var tokens []string
	for _, seg := range SplitMarkdownSurveys(content) {
		if seg.Type == "survey" {
			tokens = append(tokens, seg.Token)
		}
	}
	return tokens
}
